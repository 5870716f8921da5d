package problems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai4da/courses.om-686/model"
	"github.com/ai4da/courses.om-686/problems"
)

func networkInstance() *problems.SupplyNetwork {
	return &problems.SupplyNetwork{
		Plants: []problems.Site{
			{Name: "p1", Capacity: 150},
			{Name: "p2", Capacity: 200},
		},
		Depots: []problems.Site{
			{Name: "d1", Capacity: 220},
			{Name: "d2", Capacity: 160},
		},
		Customers: []problems.Customer{
			{Name: "c1", Demand: 100},
			{Name: "c2", Demand: 120},
		},
		InboundCost: map[string]map[string]float64{
			"p1": {"d1": 2, "d2": 3},
			"p2": {"d1": 4, "d2": 1},
		},
		OutboundCost: map[string]map[string]float64{
			"d1": {"c1": 5, "c2": 6},
			"d2": {"c1": 7, "c2": 2},
		},
	}
}

func TestSupplyNetworkModel(t *testing.T) {
	m, vars, err := networkInstance().Model()
	require.NoError(t, err)

	// 4 inbound + 4 outbound arcs.
	assert.Equal(t, 8, m.NumVars())
	// 2 plant caps + 2 depot caps + 2 balances + 2 demands.
	assert.Equal(t, 8, m.NumConstraints())
	assert.False(t, m.HasInteger())

	d, err := m.Dense()
	require.NoError(t, err)
	assert.Equal(t, model.Min, d.Sense)

	inP1D1 := vars.Inbound.MustAt("p1", "d1")
	outD1C2 := vars.Outbound.MustAt("d1", "c2")
	assert.Equal(t, 2.0, d.C.AtVec(inP1D1.Col()))
	assert.Equal(t, 6.0, d.C.AtVec(outD1C2.Col()))

	// plant_cap_p1: in(p1,d1) + in(p1,d2) <= 150
	assert.Equal(t, 1.0, d.A.At(0, inP1D1.Col()))
	assert.Equal(t, 150.0, d.B.AtVec(0))
	assert.Equal(t, model.LE, d.Rel[0])

	// Rows 2-3 are depot d1's throughput cap then flow balance.
	assert.Equal(t, 220.0, d.B.AtVec(2))
	assert.Equal(t, model.EQ, d.Rel[3])
	assert.Equal(t, 1.0, d.A.At(3, inP1D1.Col()))
	assert.Equal(t, -1.0, d.A.At(3, outD1C2.Col()))
	assert.Equal(t, 0.0, d.B.AtVec(3))
}

func TestSupplyNetworkMissingCost(t *testing.T) {
	sn := networkInstance()
	delete(sn.InboundCost["p2"], "d2")
	_, _, err := sn.Model()
	require.ErrorIs(t, err, problems.ErrMissingCost)

	sn = networkInstance()
	sn.OutboundCost["d2"] = nil
	_, _, err = sn.Model()
	require.ErrorIs(t, err, problems.ErrMissingCost)
}

func TestSupplyNetworkEmpty(t *testing.T) {
	_, _, err := (&problems.SupplyNetwork{}).Model()
	require.ErrorIs(t, err, problems.ErrEmptyInstance)
}
