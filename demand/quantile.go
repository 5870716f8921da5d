package demand

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrBadProbability indicates a quantile probability outside [0, 1].
var ErrBadProbability = errors.New("demand: probability outside [0, 1]")

// Quantile returns the empirical p-quantile of a demand history: the
// smallest observed demand whose empirical CDF reaches p. The input slice
// is not modified.
func Quantile(history []float64, p float64) (float64, error) {
	if len(history) == 0 {
		return 0, ErrNoObservations
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: p=%g", ErrBadProbability, p)
	}

	sorted := append([]float64(nil), history...)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil), nil
}
