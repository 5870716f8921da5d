package problems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai4da/courses.om-686/model"
	"github.com/ai4da/courses.om-686/problems"
)

func facilityInstance() *problems.FacilityLocation {
	return &problems.FacilityLocation{
		Facilities: []problems.Facility{
			{Name: "east", FixedCost: 5000, Capacity: 120},
			{Name: "west", FixedCost: 4000, Capacity: 80},
		},
		Customers: []problems.Customer{
			{Name: "c1", Demand: 60},
			{Name: "c2", Demand: 90},
		},
		ShipCost: map[string]map[string]float64{
			"east": {"c1": 4, "c2": 6},
			"west": {"c1": 7, "c2": 3},
		},
	}
}

func TestFacilityLocationModel(t *testing.T) {
	m, vars, err := facilityInstance().Model()
	require.NoError(t, err)

	// 2 open binaries + 4 shipment arcs.
	assert.Equal(t, 6, m.NumVars())
	// 2 demand rows + 2 capacity-link rows.
	assert.Equal(t, 4, m.NumConstraints())
	assert.True(t, m.HasInteger())

	d, err := m.Dense()
	require.NoError(t, err)
	assert.Equal(t, model.Min, d.Sense)

	openEast := vars.Open.MustAt("east")
	shipEastC1 := vars.Ship.MustAt("east", "c1")
	assert.Equal(t, model.Binary, openEast.Domain())
	assert.Equal(t, model.Continuous, shipEastC1.Domain())
	assert.Equal(t, 5000.0, d.C.AtVec(openEast.Col()))
	assert.Equal(t, 4.0, d.C.AtVec(shipEastC1.Col()))

	// demand_c1: ship(east,c1) + ship(west,c1) = 60
	assert.Equal(t, 1.0, d.A.At(0, shipEastC1.Col()))
	assert.Equal(t, 60.0, d.B.AtVec(0))
	assert.Equal(t, model.EQ, d.Rel[0])

	// capacity_east: sum_c ship(east,c) - 120 open(east) <= 0
	assert.Equal(t, -120.0, d.A.At(2, openEast.Col()))
	assert.Equal(t, 1.0, d.A.At(2, shipEastC1.Col()))
	assert.Equal(t, 0.0, d.B.AtVec(2))
	assert.Equal(t, model.LE, d.Rel[2])
}

func TestFacilityLocationZeroDemand(t *testing.T) {
	fl := facilityInstance()
	fl.Customers[1].Demand = 0

	m, _, err := fl.Model()
	require.NoError(t, err)

	d, err := m.Dense()
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.B.AtVec(1))
}

func TestFacilityLocationMissingCost(t *testing.T) {
	fl := facilityInstance()
	delete(fl.ShipCost["west"], "c2")

	_, _, err := fl.Model()
	require.ErrorIs(t, err, problems.ErrMissingCost)
}

func TestFacilityLocationEmpty(t *testing.T) {
	_, _, err := (&problems.FacilityLocation{}).Model()
	require.ErrorIs(t, err, problems.ErrEmptyInstance)
}
