package problems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai4da/courses.om-686/model"
	"github.com/ai4da/courses.om-686/problems"
	"github.com/ai4da/courses.om-686/solve"
)

func jewelInstance() *problems.Knapsack {
	return &problems.Knapsack{
		Items: []problems.KnapsackItem{
			{Name: "ruby", Value: 5000, Weight: 3},
			{Name: "emerald", Value: 4000, Weight: 2},
			{Name: "pearl", Value: 1000, Weight: 1},
		},
		Capacity: 4,
	}
}

func TestKnapsackModel(t *testing.T) {
	m, take, err := jewelInstance().Model()
	require.NoError(t, err)

	assert.Equal(t, 3, m.NumVars())
	assert.Equal(t, 1, m.NumConstraints())
	assert.True(t, m.HasInteger())
	for _, v := range m.Vars() {
		assert.Equal(t, model.Binary, v.Domain())
	}

	d, err := m.Dense()
	require.NoError(t, err)
	ruby := take.MustAt("ruby")
	assert.Equal(t, 5000.0, d.C.AtVec(ruby.Col()))
	assert.Equal(t, 3.0, d.A.At(0, ruby.Col()))
	assert.Equal(t, 4.0, d.B.AtVec(0))
}

func TestKnapsackChosen(t *testing.T) {
	k := jewelInstance()
	_, take, err := k.Model()
	require.NoError(t, err)

	sol := solve.NewSolution(solve.StatusOptimal, 6000, map[string]float64{
		"take(ruby)":    0,
		"take(emerald)": 1,
		"take(pearl)":   1,
	})

	chosen, err := k.Chosen(sol, take)
	require.NoError(t, err)
	require.Len(t, chosen, 2)
	assert.Equal(t, "emerald", chosen[0].Name)
	assert.Equal(t, "pearl", chosen[1].Name)
}

func TestKnapsackEmpty(t *testing.T) {
	_, _, err := (&problems.Knapsack{Capacity: 10}).Model()
	require.ErrorIs(t, err, problems.ErrEmptyInstance)
}
