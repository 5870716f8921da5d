package demand

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NumFeatures is the number of observable features per observation in the
// course dataset.
const NumFeatures = 5

// ErrBadCount indicates a non-positive observation count.
var ErrBadCount = errors.New("demand: observation count must be positive")

// Observation is one period of demand history with its observed features.
type Observation struct {
	Features []float64
	Demand   float64
}

// Generate produces a seeded synthetic demand history of n observations.
// Features are uniform on [-1, 2) rounded to four decimals; demand is a
// rounded nonlinear response of the features plus Normal(4, 2) noise, with
// an expected value near 100 over the feature distribution. The same seed
// reproduces the same history.
func Generate(n int, seed uint64) ([]Observation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}

	src := rand.NewSource(seed)
	feature := distuv.Uniform{Min: -1, Max: 2, Src: src}
	noise := distuv.Normal{Mu: 4, Sigma: 2, Src: src}

	obs := make([]Observation, n)
	for i := range obs {
		fs := make([]float64, NumFeatures)
		for j := range fs {
			fs[j] = math.Round(feature.Rand()*1e4) / 1e4
		}
		obs[i] = Observation{
			Features: fs,
			Demand:   math.Round(12*response(fs) + noise.Rand()),
		}
	}

	return obs, nil
}

// response is the course's demand curve over one feature vector.
func response(fs []float64) float64 {
	return 2 +
		0.3*fs[0] +
		0.5*math.Pow(fs[1], 3) +
		0.7*fs[2]*fs[3] +
		0.9*(fs[1]+fs[3]) +
		math.Sin(fs[4])
}

// Demands extracts the demand column of a history.
func Demands(obs []Observation) []float64 {
	out := make([]float64, len(obs))
	for i, o := range obs {
		out[i] = o.Demand
	}

	return out
}
