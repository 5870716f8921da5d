package problems

import (
	"fmt"

	"github.com/ai4da/courses.om-686/model"
)

// Site is a capacitated node of the supply network: a plant's production
// capacity or a depot's throughput limit.
type Site struct {
	Name     string  `yaml:"name"`
	Capacity float64 `yaml:"capacity"`
}

// SupplyNetwork is the two-echelon network design LP: plants ship to depots,
// depots ship to customers, and every unit entering a depot must leave it.
type SupplyNetwork struct {
	Plants    []Site     `yaml:"plants"`
	Depots    []Site     `yaml:"depots"`
	Customers []Customer `yaml:"customers"`

	// InboundCost maps plant name -> depot name -> unit cost.
	InboundCost map[string]map[string]float64 `yaml:"inbound_cost"`

	// OutboundCost maps depot name -> customer name -> unit cost.
	OutboundCost map[string]map[string]float64 `yaml:"outbound_cost"`
}

// NetworkVars bundles the handles of a lowered network instance.
type NetworkVars struct {
	// Inbound holds the plant -> depot flow per pair.
	Inbound *model.VarSet

	// Outbound holds the depot -> customer flow per pair.
	Outbound *model.VarSet
}

// Model lowers the instance:
//
//	min  sum_{p,d} in_cost_{p,d} * in_{p,d} + sum_{d,c} out_cost_{d,c} * out_{d,c}
//	s.t. sum_d in_{p,d} <= capacity_p                for each plant p
//	     sum_p in_{p,d} <= capacity_d                for each depot d
//	     sum_p in_{p,d} - sum_c out_{d,c} = 0        for each depot d
//	     sum_d out_{d,c} = demand_c                  for each customer c
//	     in, out >= 0
func (sn *SupplyNetwork) Model() (*model.Model, *NetworkVars, error) {
	if len(sn.Plants) == 0 || len(sn.Depots) == 0 || len(sn.Customers) == 0 {
		return nil, nil, fmt.Errorf("%w: network needs plants, depots, and customers", ErrEmptyInstance)
	}

	pNames := siteNames(sn.Plants)
	dNames := siteNames(sn.Depots)
	cNames := make([]string, len(sn.Customers))
	for i, c := range sn.Customers {
		cNames[i] = c.Name
	}

	m := model.New("supply-network")
	in, err := m.NewVars("in", model.Continuous, pNames, dNames)
	if err != nil {
		return nil, nil, err
	}
	out, err := m.NewVars("out", model.Continuous, dNames, cNames)
	if err != nil {
		return nil, nil, err
	}

	obj := model.NewExpr()
	for _, p := range pNames {
		for _, d := range dNames {
			cost, ok := sn.InboundCost[p][d]
			if !ok {
				return nil, nil, fmt.Errorf("%w: inbound %s -> %s", ErrMissingCost, p, d)
			}
			obj.Add(cost, in.MustAt(p, d))
		}
	}
	for _, d := range dNames {
		for _, c := range cNames {
			cost, ok := sn.OutboundCost[d][c]
			if !ok {
				return nil, nil, fmt.Errorf("%w: outbound %s -> %s", ErrMissingCost, d, c)
			}
			obj.Add(cost, out.MustAt(d, c))
		}
	}
	if err := m.Minimize(obj); err != nil {
		return nil, nil, err
	}

	for _, p := range sn.Plants {
		row := model.NewExpr()
		for _, d := range dNames {
			row.Add(1, in.MustAt(p.Name, d))
		}
		if _, err := m.AddLe("plant_cap_"+p.Name, row, p.Capacity); err != nil {
			return nil, nil, err
		}
	}

	for _, d := range sn.Depots {
		through := model.NewExpr()
		for _, p := range pNames {
			through.Add(1, in.MustAt(p, d.Name))
		}
		if _, err := m.AddLe("depot_cap_"+d.Name, through, d.Capacity); err != nil {
			return nil, nil, err
		}

		balance := model.NewExpr()
		for _, p := range pNames {
			balance.Add(1, in.MustAt(p, d.Name))
		}
		for _, c := range cNames {
			balance.Add(-1, out.MustAt(d.Name, c))
		}
		if _, err := m.AddEq("balance_"+d.Name, balance, 0); err != nil {
			return nil, nil, err
		}
	}

	for _, c := range sn.Customers {
		row := model.NewExpr()
		for _, d := range dNames {
			row.Add(1, out.MustAt(d, c.Name))
		}
		if _, err := m.AddEq("demand_"+c.Name, row, c.Demand); err != nil {
			return nil, nil, err
		}
	}

	return m, &NetworkVars{Inbound: in, Outbound: out}, nil
}

func siteNames(sites []Site) []string {
	names := make([]string, len(sites))
	for i, s := range sites {
		names[i] = s.Name
	}

	return names
}
