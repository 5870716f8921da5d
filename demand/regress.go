package demand

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for regression inputs.
var (
	// ErrNoObservations indicates an empty history.
	ErrNoObservations = errors.New("demand: no observations")

	// ErrFeatureMismatch indicates observations with inconsistent feature
	// counts, or a prediction with the wrong number of features.
	ErrFeatureMismatch = errors.New("demand: feature count mismatch")

	// ErrUnderdetermined indicates fewer observations than coefficients.
	ErrUnderdetermined = errors.New("demand: fewer observations than coefficients")
)

// LinearModel is a fitted least-squares demand predictor:
// demand ≈ Intercept + Coef · features.
type LinearModel struct {
	Intercept float64
	Coef      []float64
}

// FitLinear fits demand on features by least squares. The normal equations
// are solved through gonum's QR factorization; this package does not
// implement any numerical kernel of its own.
func FitLinear(obs []Observation) (*LinearModel, error) {
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}
	k := len(obs[0].Features)
	if k == 0 {
		return nil, fmt.Errorf("%w: observations carry no features", ErrFeatureMismatch)
	}
	if len(obs) < k+1 {
		return nil, fmt.Errorf("%w: %d observations for %d coefficients",
			ErrUnderdetermined, len(obs), k+1)
	}

	x := mat.NewDense(len(obs), k+1, nil)
	y := mat.NewVecDense(len(obs), nil)
	for i, o := range obs {
		if len(o.Features) != k {
			return nil, fmt.Errorf("%w: observation %d has %d features, want %d",
				ErrFeatureMismatch, i+1, len(o.Features), k)
		}
		x.Set(i, 0, 1)
		for j, f := range o.Features {
			x.Set(i, j+1, f)
		}
		y.SetVec(i, o.Demand)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		return nil, fmt.Errorf("demand: least squares: %w", err)
	}

	lm := &LinearModel{Intercept: beta.AtVec(0), Coef: make([]float64, k)}
	for j := range lm.Coef {
		lm.Coef[j] = beta.AtVec(j + 1)
	}

	return lm, nil
}

// Predict evaluates the fitted model on one feature vector.
func (lm *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(lm.Coef) {
		return 0, fmt.Errorf("%w: got %d features, want %d",
			ErrFeatureMismatch, len(features), len(lm.Coef))
	}

	pred := lm.Intercept
	for j, f := range features {
		pred += lm.Coef[j] * f
	}

	return pred, nil
}
