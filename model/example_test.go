package model_test

import (
	"os"

	"github.com/ai4da/courses.om-686/model"
)

// ExampleModel declares a two-product mix LP and prints its LP-format text.
func ExampleModel() {
	m := model.New("mix")
	products := []string{"desk", "table"}
	make_, _ := m.NewVars("make", model.Continuous, products)

	profit := map[string]float64{"desk": 700, "table": 900}
	wood := map[string]float64{"desk": 3, "table": 5}

	obj := model.NewExpr()
	capacity := model.NewExpr()
	for _, p := range products {
		obj.Add(profit[p], make_.MustAt(p))
		capacity.Add(wood[p], make_.MustAt(p))
	}
	_ = m.Maximize(obj)
	_, _ = m.AddLe("wood", capacity, 3600)

	_ = m.WriteLP(os.Stdout)
	// Output:
	// \ Problem: mix
	// Maximize
	//  obj: 700 make(desk) + 900 make(table)
	// Subject To
	//  wood: 3 make(desk) + 5 make(table) <= 3600
	// Bounds
	// End
}
