package demand_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai4da/courses.om-686/demand"
)

func TestGenerateShapeAndDeterminism(t *testing.T) {
	a, err := demand.Generate(20, 123)
	require.NoError(t, err)
	b, err := demand.Generate(20, 123)
	require.NoError(t, err)
	require.Len(t, a, 20)
	assert.Equal(t, a, b)

	for _, o := range a {
		require.Len(t, o.Features, demand.NumFeatures)
		for _, f := range o.Features {
			// Rounding to four decimals can land exactly on the upper edge.
			assert.GreaterOrEqual(t, f, -1.0)
			assert.LessOrEqual(t, f, 2.0)
		}
		// Demands are rounded to whole units.
		assert.Equal(t, math.Trunc(o.Demand), o.Demand)
	}

	c, err := demand.Generate(20, 456)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	_, err := demand.Generate(-1, 1)
	require.ErrorIs(t, err, demand.ErrBadCount)

	_, err = demand.Generate(0, 1)
	require.ErrorIs(t, err, demand.ErrBadCount)
}

func TestQuantile(t *testing.T) {
	history := []float64{40, 10, 30, 20}

	q, err := demand.Quantile(history, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 20.0, q)

	q, err = demand.Quantile(history, 1)
	require.NoError(t, err)
	assert.Equal(t, 40.0, q)

	// The input order is preserved.
	assert.Equal(t, []float64{40, 10, 30, 20}, history)
}

func TestQuantileInputValidation(t *testing.T) {
	_, err := demand.Quantile(nil, 0.5)
	require.ErrorIs(t, err, demand.ErrNoObservations)

	_, err = demand.Quantile([]float64{1}, -0.1)
	require.ErrorIs(t, err, demand.ErrBadProbability)

	_, err = demand.Quantile([]float64{1}, 1.5)
	require.ErrorIs(t, err, demand.ErrBadProbability)
}

func TestDemands(t *testing.T) {
	obs := []demand.Observation{
		{Features: []float64{0}, Demand: 90},
		{Features: []float64{1}, Demand: 110},
	}
	assert.Equal(t, []float64{90, 110}, demand.Demands(obs))
}

func TestFitLinearRecoversExactModel(t *testing.T) {
	// demand = 3 + 2*f1 - f2 exactly; least squares must recover it.
	features := [][]float64{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2},
	}
	obs := make([]demand.Observation, len(features))
	for i, fs := range features {
		obs[i] = demand.Observation{
			Features: fs,
			Demand:   3 + 2*fs[0] - fs[1],
		}
	}

	lm, err := demand.FitLinear(obs)
	require.NoError(t, err)
	assert.InDelta(t, 3, lm.Intercept, 1e-9)
	require.Len(t, lm.Coef, 2)
	assert.InDelta(t, 2, lm.Coef[0], 1e-9)
	assert.InDelta(t, -1, lm.Coef[1], 1e-9)

	pred, err := lm.Predict([]float64{3, 1})
	require.NoError(t, err)
	assert.InDelta(t, 8, pred, 1e-9)

	_, err = lm.Predict([]float64{1})
	require.ErrorIs(t, err, demand.ErrFeatureMismatch)
}

func TestFitLinearInputValidation(t *testing.T) {
	_, err := demand.FitLinear(nil)
	require.ErrorIs(t, err, demand.ErrNoObservations)

	_, err = demand.FitLinear([]demand.Observation{{Features: nil, Demand: 1}})
	require.ErrorIs(t, err, demand.ErrFeatureMismatch)

	_, err = demand.FitLinear([]demand.Observation{
		{Features: []float64{1, 2}, Demand: 1},
		{Features: []float64{2, 1}, Demand: 2},
	})
	require.ErrorIs(t, err, demand.ErrUnderdetermined)

	_, err = demand.FitLinear([]demand.Observation{
		{Features: []float64{1, 2}, Demand: 1},
		{Features: []float64{2}, Demand: 2},
		{Features: []float64{0, 1}, Demand: 3},
	})
	require.ErrorIs(t, err, demand.ErrFeatureMismatch)
}
