package problems

import (
	"fmt"

	"github.com/ai4da/courses.om-686/model"
)

// Product is one product of a mix instance.
type Product struct {
	Name   string  `yaml:"name"`
	Profit float64 `yaml:"profit"`
}

// Resource is one capacitated resource of a mix instance.
type Resource struct {
	Name     string  `yaml:"name"`
	Capacity float64 `yaml:"capacity"`
}

// ProductMix is the introductory LP: choose production quantities that
// maximize profit subject to resource capacities.
type ProductMix struct {
	Products  []Product  `yaml:"products"`
	Resources []Resource `yaml:"resources"`

	// Usage maps product name -> resource name -> per-unit consumption.
	Usage map[string]map[string]float64 `yaml:"usage"`
}

// Model lowers the instance:
//
//	max  sum_p profit_p * make_p
//	s.t. sum_p usage_{p,r} * make_p <= capacity_r   for each resource r
//	     make_p >= 0
func (pm *ProductMix) Model() (*model.Model, *model.VarSet, error) {
	if len(pm.Products) == 0 || len(pm.Resources) == 0 {
		return nil, nil, fmt.Errorf("%w: product mix needs products and resources", ErrEmptyInstance)
	}
	if err := pm.checkUsageNames(); err != nil {
		return nil, nil, err
	}

	names := make([]string, len(pm.Products))
	for i, p := range pm.Products {
		names[i] = p.Name
	}

	m := model.New("product-mix")
	makeVars, err := m.NewVars("make", model.Continuous, names)
	if err != nil {
		return nil, nil, err
	}

	obj := model.NewExpr()
	for _, p := range pm.Products {
		obj.Add(p.Profit, makeVars.MustAt(p.Name))
	}
	if err := m.Maximize(obj); err != nil {
		return nil, nil, err
	}

	for _, r := range pm.Resources {
		row := model.NewExpr()
		for _, p := range pm.Products {
			if use := pm.Usage[p.Name][r.Name]; use != 0 {
				row.Add(use, makeVars.MustAt(p.Name))
			}
		}
		if row.NumTerms() == 0 {
			// Resource consumed by nothing; no row needed.
			continue
		}
		if _, err := m.AddLe("cap_"+r.Name, row, r.Capacity); err != nil {
			return nil, nil, err
		}
	}

	return m, makeVars, nil
}

// checkUsageNames rejects usage entries for undeclared products or resources.
func (pm *ProductMix) checkUsageNames() error {
	products := make(map[string]bool, len(pm.Products))
	for _, p := range pm.Products {
		products[p.Name] = true
	}
	resources := make(map[string]bool, len(pm.Resources))
	for _, r := range pm.Resources {
		resources[r.Name] = true
	}

	for prod, uses := range pm.Usage {
		if !products[prod] {
			return fmt.Errorf("%w: usage for product %q", ErrUnknownName, prod)
		}
		for res := range uses {
			if !resources[res] {
				return fmt.Errorf("%w: usage of resource %q", ErrUnknownName, res)
			}
		}
	}

	return nil
}
