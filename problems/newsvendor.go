package problems

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ai4da/courses.om-686/demand"
	"github.com/ai4da/courses.om-686/model"
)

// Newsvendor is the single-period stocking problem: choose an order quantity
// before demand is known, trading off underage (lost margin per unit short)
// against overage (loss per unit left over).
type Newsvendor struct {
	Underage float64 `yaml:"underage"`
	Overage  float64 `yaml:"overage"`
}

// CriticalRatio returns underage / (underage + overage). Both costs must be
// positive so the ratio lies strictly inside (0, 1).
func (n Newsvendor) CriticalRatio() (float64, error) {
	if n.Underage <= 0 || n.Overage <= 0 {
		return 0, fmt.Errorf("%w: underage=%g overage=%g", ErrBadRatio, n.Underage, n.Overage)
	}

	return n.Underage / (n.Underage + n.Overage), nil
}

// NormalQuantity returns the optimal order quantity when demand is
// Normal(mean, stddev): the inverse CDF at the critical ratio.
func (n Newsvendor) NormalQuantity(mean, stddev float64) (float64, error) {
	ratio, err := n.CriticalRatio()
	if err != nil {
		return 0, err
	}
	if stddev <= 0 {
		return 0, fmt.Errorf("%w: stddev=%g", ErrBadRatio, stddev)
	}

	dist := distuv.Normal{Mu: mean, Sigma: stddev}

	return dist.Quantile(ratio), nil
}

// EmpiricalQuantity returns the critical-ratio quantile of a demand history,
// the data-driven quantity the course derives in its final part.
func (n Newsvendor) EmpiricalQuantity(history []float64) (float64, error) {
	ratio, err := n.CriticalRatio()
	if err != nil {
		return 0, err
	}
	if len(history) == 0 {
		return 0, ErrNoHistory
	}

	return demand.Quantile(history, ratio)
}

// NewsvendorVars bundles the handles of a lowered scenario model.
type NewsvendorVars struct {
	// Quantity is the single order decision shared by all scenarios.
	Quantity *model.Var

	// Sales holds the realized sales per scenario.
	Sales *model.VarSet
}

// ScenarioModel lowers the sample-average formulation over a demand history,
// one scenario per observation with equal weight:
//
//	min  overage*Q + (1/S) * sum_s [ -(overage+underage)*sales_s + underage*d_s ]
//	s.t. sales_s <= Q        for each scenario s
//	     sales_s <= d_s      for each scenario s
//	     Q, sales >= 0
//
// The objective is the expected mismatch cost
// (1/S) sum_s [overage*(Q - sales_s) + underage*(d_s - sales_s)] with the
// constant demand terms folded into the expression constant.
func (n Newsvendor) ScenarioModel(demands []float64) (*model.Model, *NewsvendorVars, error) {
	if _, err := n.CriticalRatio(); err != nil {
		return nil, nil, err
	}
	if len(demands) == 0 {
		return nil, nil, ErrNoHistory
	}

	m := model.New("newsvendor")
	q, err := m.NewVar("quantity", model.Continuous)
	if err != nil {
		return nil, nil, err
	}

	scenarios := make([]string, len(demands))
	for i := range demands {
		scenarios[i] = fmt.Sprintf("s%d", i+1)
	}
	sales, err := m.NewVars("sales", model.Continuous, scenarios)
	if err != nil {
		return nil, nil, err
	}

	weight := 1 / float64(len(demands))
	obj := model.Term(n.Overage, q)
	for i, s := range scenarios {
		sv := sales.MustAt(s)
		obj.Add(-(n.Overage+n.Underage)*weight, sv)
		obj.AddConst(n.Underage * weight * demands[i])

		stock := model.NewExpr().Add(1, sv).Add(-1, q)
		if _, err := m.AddLe("stock_"+s, stock, 0); err != nil {
			return nil, nil, err
		}
		if _, err := m.AddLe("demand_"+s, model.Term(1, sv), demands[i]); err != nil {
			return nil, nil, err
		}
	}
	if err := m.Minimize(obj); err != nil {
		return nil, nil, err
	}

	return m, &NewsvendorVars{Quantity: q, Sales: sales}, nil
}
