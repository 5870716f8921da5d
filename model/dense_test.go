package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai4da/courses.om-686/model"
)

func TestDenseSnapshot(t *testing.T) {
	m := sampleModel(t)

	d, err := m.Dense()
	require.NoError(t, err)

	assert.Equal(t, model.Max, d.Sense)
	assert.Equal(t, []float64{3, -2, 1, 5}, d.C.RawVector().Data)
	assert.Equal(t, 0.0, d.ObjConst)

	r, c := d.A.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)

	// cap: x + 2 y <= 14
	assert.Equal(t, 1.0, d.A.At(0, 0))
	assert.Equal(t, 2.0, d.A.At(0, 1))
	assert.Equal(t, 14.0, d.B.AtVec(0))
	assert.Equal(t, model.LE, d.Rel[0])

	// floor: y - n + 2 >= 0 folds to y - n >= -2
	assert.Equal(t, 1.0, d.A.At(1, 1))
	assert.Equal(t, -1.0, d.A.At(1, 2))
	assert.Equal(t, -2.0, d.B.AtVec(1))
	assert.Equal(t, model.GE, d.Rel[1])

	// pick: b = 1
	assert.Equal(t, 1.0, d.A.At(2, 3))
	assert.Equal(t, 1.0, d.B.AtVec(2))
	assert.Equal(t, model.EQ, d.Rel[2])
}

func TestDenseNoConstraints(t *testing.T) {
	m := model.New("unconstrained")
	x, err := m.NewVar("x", model.Continuous, model.Upper(1))
	require.NoError(t, err)
	require.NoError(t, m.Maximize(model.Term(2, x).AddConst(1)))

	d, err := m.Dense()
	require.NoError(t, err)
	assert.Nil(t, d.A)
	assert.Nil(t, d.B)
	assert.Equal(t, 1.0, d.ObjConst)
	assert.NotEmpty(t, d.String())
}

func TestDenseRequiresObjective(t *testing.T) {
	m := model.New("bare")
	_, err := m.NewVar("x", model.Continuous)
	require.NoError(t, err)

	_, err = m.Dense()
	require.ErrorIs(t, err, model.ErrNoObjective)
}
