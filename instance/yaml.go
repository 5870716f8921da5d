package instance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ai4da/courses.om-686/problems"
)

// LoadProductMix reads a product-mix instance from a YAML file.
func LoadProductMix(path string) (*problems.ProductMix, error) {
	return loadYAML[problems.ProductMix](path)
}

// LoadKnapsack reads a knapsack instance from a YAML file.
func LoadKnapsack(path string) (*problems.Knapsack, error) {
	return loadYAML[problems.Knapsack](path)
}

// LoadFacilityLocation reads a facility location instance from a YAML file.
func LoadFacilityLocation(path string) (*problems.FacilityLocation, error) {
	return loadYAML[problems.FacilityLocation](path)
}

// LoadSupplyNetwork reads a supply-network instance from a YAML file.
func LoadSupplyNetwork(path string) (*problems.SupplyNetwork, error) {
	return loadYAML[problems.SupplyNetwork](path)
}

// LoadNewsvendor reads newsvendor cost parameters from a YAML file.
func LoadNewsvendor(path string) (*problems.Newsvendor, error) {
	return loadYAML[problems.Newsvendor](path)
}

// loadYAML decodes one strictly-typed YAML document. Unknown fields are
// errors, so a typo in an instance file fails loudly instead of producing a
// silently wrong model.
func loadYAML[T any](path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var v T
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("instance: parse %s: %w", path, err)
	}

	return &v, nil
}
