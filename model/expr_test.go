package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai4da/courses.om-686/model"
)

func twoVars(t *testing.T) (*model.Model, *model.Var, *model.Var) {
	t.Helper()
	m := model.New("expr")
	x, err := m.NewVar("x", model.Continuous)
	require.NoError(t, err)
	y, err := m.NewVar("y", model.Continuous)
	require.NoError(t, err)

	return m, x, y
}

func TestExprAddCoalesces(t *testing.T) {
	_, x, y := twoVars(t)

	e := model.NewExpr().Add(2, x).Add(3, y).Add(0.5, x)
	assert.Equal(t, 2, e.NumTerms())
	assert.InDelta(t, 2.5, e.Coef(x), 1e-12)
	assert.InDelta(t, 3.0, e.Coef(y), 1e-12)
}

func TestExprConstantAndScale(t *testing.T) {
	_, x, _ := twoVars(t)

	e := model.Term(4, x).AddConst(6)
	e.Scale(0.5)
	assert.InDelta(t, 2, e.Coef(x), 1e-12)
	assert.InDelta(t, 3, e.Constant(), 1e-12)
}

func TestExprAddExpr(t *testing.T) {
	_, x, y := twoVars(t)

	a := model.Term(1, x).AddConst(2)
	b := model.NewExpr().Add(1, x).Add(5, y).AddConst(-1)
	a.AddExpr(b)

	assert.InDelta(t, 2, a.Coef(x), 1e-12)
	assert.InDelta(t, 5, a.Coef(y), 1e-12)
	assert.InDelta(t, 1, a.Constant(), 1e-12)
}

func TestSumAndDot(t *testing.T) {
	_, x, y := twoVars(t)

	s := model.Sum(x, y)
	assert.InDelta(t, 1, s.Coef(x), 1e-12)
	assert.InDelta(t, 1, s.Coef(y), 1e-12)

	d, err := model.Dot([]float64{2, -3}, []*model.Var{x, y})
	require.NoError(t, err)
	assert.InDelta(t, 2, d.Coef(x), 1e-12)
	assert.InDelta(t, -3, d.Coef(y), 1e-12)

	_, err = model.Dot([]float64{1}, []*model.Var{x, y})
	require.ErrorIs(t, err, model.ErrDimension)
}

func TestExprVisitSkipsZeroTerms(t *testing.T) {
	_, x, y := twoVars(t)

	e := model.NewExpr().Add(1, x).Add(2, y).Add(-1, x)
	var seen []string
	e.Visit(func(v *model.Var, coef float64) {
		seen = append(seen, v.Name())
	})
	assert.Equal(t, []string{"y"}, seen)
}

func TestExprString(t *testing.T) {
	_, x, y := twoVars(t)

	e := model.NewExpr().Add(3, x).Add(-2, y).AddConst(7)
	assert.Equal(t, "3 x - 2 y + 7", e.String())

	assert.Equal(t, "0", model.NewExpr().String())
	assert.Equal(t, "x", model.Sum(x).String())
}
