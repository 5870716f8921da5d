package instance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/ai4da/courses.om-686/demand"
	"github.com/ai4da/courses.om-686/solve"
)

// ErrBadHeader indicates a demand-history CSV whose header does not match
// the course layout "Observation,Feature_1,...,Feature_k,Demand".
var ErrBadHeader = errors.New("instance: bad demand history header")

// ReadDemandHistory reads a demand history in the course CSV layout: an
// Observation index column, one or more Feature_i columns, and a Demand
// column.
func ReadDemandHistory(path string) ([]demand.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrBadHeader, path)
	}

	header := rows[0]
	k := len(header) - 2
	if k < 1 || header[0] != "Observation" || header[len(header)-1] != "Demand" {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, header)
	}
	for j := 1; j <= k; j++ {
		if header[j] != fmt.Sprintf("Feature_%d", j) {
			return nil, fmt.Errorf("%w: column %d is %q", ErrBadHeader, j, header[j])
		}
	}

	obs := make([]demand.Observation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("instance: row %d has %d columns, want %d", i+2, len(row), len(header))
		}
		o := demand.Observation{Features: make([]float64, k)}
		for j := 0; j < k; j++ {
			o.Features[j], err = strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("instance: row %d feature %d: %w", i+2, j+1, err)
			}
		}
		o.Demand, err = strconv.ParseFloat(row[len(row)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("instance: row %d demand: %w", i+2, err)
		}
		obs = append(obs, o)
	}

	return obs, nil
}

// WriteDemandHistory writes a demand history in the course CSV layout with
// a 1-based Observation index.
func WriteDemandHistory(path string, obs []demand.Observation) error {
	if len(obs) == 0 {
		return demand.ErrNoObservations
	}
	k := len(obs[0].Features)
	for i, o := range obs {
		if len(o.Features) != k {
			return fmt.Errorf("instance: observation %d has %d features, want %d: %w",
				i+1, len(o.Features), k, demand.ErrFeatureMismatch)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: %w", err)
	}

	w := csv.NewWriter(f)
	header := make([]string, 0, k+2)
	header = append(header, "Observation")
	for j := 1; j <= k; j++ {
		header = append(header, fmt.Sprintf("Feature_%d", j))
	}
	header = append(header, "Demand")
	if err := w.Write(header); err != nil {
		f.Close()

		return fmt.Errorf("instance: %w", err)
	}

	for i, o := range obs {
		row := make([]string, 0, k+2)
		row = append(row, strconv.Itoa(i+1))
		for _, feat := range o.Features {
			row = append(row, strconv.FormatFloat(feat, 'g', -1, 64))
		}
		row = append(row, strconv.FormatFloat(o.Demand, 'g', -1, 64))
		if err := w.Write(row); err != nil {
			f.Close()

			return fmt.Errorf("instance: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()

		return fmt.Errorf("instance: %w", err)
	}

	return f.Close()
}

// WriteSolution exports a solved assignment as "variable,value" rows sorted
// by variable name, preceded by the objective value.
func WriteSolution(path string, sol *solve.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: %w", err)
	}

	w := csv.NewWriter(f)
	records := [][]string{
		{"variable", "value"},
		{"_objective", strconv.FormatFloat(sol.Objective(), 'g', -1, 64)},
	}

	values := sol.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		records = append(records, []string{name, strconv.FormatFloat(values[name], 'g', -1, 64)})
	}

	if err := w.WriteAll(records); err != nil {
		f.Close()

		return fmt.Errorf("instance: %w", err)
	}

	return f.Close()
}
