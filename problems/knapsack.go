package problems

import (
	"fmt"

	"github.com/ai4da/courses.om-686/model"
	"github.com/ai4da/courses.om-686/solve"
)

// KnapsackItem is one candidate item with its value and weight.
type KnapsackItem struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

// Knapsack is the 0/1 knapsack: pick the item subset of maximum total value
// whose total weight fits the capacity. A capacity below the lightest item
// is a legal instance; it solves to the empty selection with objective 0.
type Knapsack struct {
	Items    []KnapsackItem `yaml:"items"`
	Capacity float64        `yaml:"capacity"`
}

// Model lowers the instance:
//
//	max  sum_i value_i * take_i
//	s.t. sum_i weight_i * take_i <= capacity
//	     take_i in {0,1}
func (k *Knapsack) Model() (*model.Model, *model.VarSet, error) {
	if len(k.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: knapsack needs items", ErrEmptyInstance)
	}

	names := make([]string, len(k.Items))
	for i, it := range k.Items {
		names[i] = it.Name
	}

	m := model.New("knapsack")
	take, err := m.NewVars("take", model.Binary, names)
	if err != nil {
		return nil, nil, err
	}

	obj := model.NewExpr()
	weight := model.NewExpr()
	for _, it := range k.Items {
		v := take.MustAt(it.Name)
		obj.Add(it.Value, v)
		weight.Add(it.Weight, v)
	}
	if err := m.Maximize(obj); err != nil {
		return nil, nil, err
	}
	if _, err := m.AddLe("capacity", weight, k.Capacity); err != nil {
		return nil, nil, err
	}

	return m, take, nil
}

// Chosen returns the items selected by a solved model. MIP backends return
// integral values up to tolerance, so anything above 0.5 counts as taken.
func (k *Knapsack) Chosen(sol *solve.Solution, take *model.VarSet) ([]KnapsackItem, error) {
	var chosen []KnapsackItem
	for _, it := range k.Items {
		val, err := sol.Value(take.MustAt(it.Name))
		if err != nil {
			return nil, err
		}
		if val > 0.5 {
			chosen = append(chosen, it)
		}
	}

	return chosen, nil
}
