package problems

import (
	"fmt"

	"github.com/ai4da/courses.om-686/model"
)

// Facility is a candidate site with an opening cost and a shipping capacity.
type Facility struct {
	Name      string  `yaml:"name"`
	FixedCost float64 `yaml:"fixed_cost"`
	Capacity  float64 `yaml:"capacity"`
}

// Customer is a demand point. Zero demand is legal; it pins the customer's
// inbound shipments to zero.
type Customer struct {
	Name   string  `yaml:"name"`
	Demand float64 `yaml:"demand"`
}

// FacilityLocation is the capacitated facility location MIP: decide which
// facilities to open and how to ship from open facilities to customers so
// total fixed plus shipping cost is minimal.
type FacilityLocation struct {
	Facilities []Facility `yaml:"facilities"`
	Customers  []Customer `yaml:"customers"`

	// ShipCost maps facility name -> customer name -> unit shipping cost.
	// Every facility-customer pair needs an entry.
	ShipCost map[string]map[string]float64 `yaml:"ship_cost"`
}

// FacilityVars bundles the handles of a lowered facility location instance.
type FacilityVars struct {
	// Open holds the binary open decision per facility.
	Open *model.VarSet

	// Ship holds the continuous shipment per (facility, customer) pair.
	Ship *model.VarSet
}

// Model lowers the instance:
//
//	min  sum_f fixed_f * open_f + sum_{f,c} cost_{f,c} * ship_{f,c}
//	s.t. sum_f ship_{f,c} = demand_c                 for each customer c
//	     sum_c ship_{f,c} - capacity_f * open_f <= 0 for each facility f
//	     ship >= 0, open in {0,1}
func (fl *FacilityLocation) Model() (*model.Model, *FacilityVars, error) {
	if len(fl.Facilities) == 0 || len(fl.Customers) == 0 {
		return nil, nil, fmt.Errorf("%w: facility location needs facilities and customers", ErrEmptyInstance)
	}

	fNames := make([]string, len(fl.Facilities))
	for i, f := range fl.Facilities {
		fNames[i] = f.Name
	}
	cNames := make([]string, len(fl.Customers))
	for i, c := range fl.Customers {
		cNames[i] = c.Name
	}

	m := model.New("facility-location")
	open, err := m.NewVars("open", model.Binary, fNames)
	if err != nil {
		return nil, nil, err
	}
	ship, err := m.NewVars("ship", model.Continuous, fNames, cNames)
	if err != nil {
		return nil, nil, err
	}

	obj := model.NewExpr()
	for _, f := range fl.Facilities {
		obj.Add(f.FixedCost, open.MustAt(f.Name))
		for _, c := range fl.Customers {
			cost, ok := fl.ShipCost[f.Name][c.Name]
			if !ok {
				return nil, nil, fmt.Errorf("%w: ship cost %s -> %s", ErrMissingCost, f.Name, c.Name)
			}
			obj.Add(cost, ship.MustAt(f.Name, c.Name))
		}
	}
	if err := m.Minimize(obj); err != nil {
		return nil, nil, err
	}

	for _, c := range fl.Customers {
		row := model.NewExpr()
		for _, f := range fl.Facilities {
			row.Add(1, ship.MustAt(f.Name, c.Name))
		}
		if _, err := m.AddEq("demand_"+c.Name, row, c.Demand); err != nil {
			return nil, nil, err
		}
	}

	for _, f := range fl.Facilities {
		row := model.NewExpr()
		for _, c := range fl.Customers {
			row.Add(1, ship.MustAt(f.Name, c.Name))
		}
		row.Add(-f.Capacity, open.MustAt(f.Name))
		if _, err := m.AddLe("capacity_"+f.Name, row, 0); err != nil {
			return nil, nil, err
		}
	}

	return m, &FacilityVars{Open: open, Ship: ship}, nil
}
