package sensitivity

import (
	"fmt"
	"math"
	"sort"

	"capex_forecast/pkg/core/capex"
)

// Analyzer wraps a cost engine and a baseline parameter set. It holds no
// other state; every Run recomputes from scratch.
type Analyzer struct {
	engine capex.Engine
	base   capex.ProjectParameters
}

// NewAnalyzer builds an analyzer over engine with the given baseline.
func NewAnalyzer(engine capex.Engine, base capex.ProjectParameters) *Analyzer {
	return &Analyzer{engine: engine, base: base}
}

// BaselineTotal returns the total CapEx of the unperturbed baseline.
func (a *Analyzer) BaselineTotal() float64 {
	return a.engine.TotalCapEx(a.base)
}

// Run evaluates each perturbation at its low and high bound and returns
// the results sorted by impact, largest first. Equal impacts keep their
// declaration order (stable sort), so output is deterministic for
// identical inputs.
func (a *Analyzer) Run(perturbations []Perturbation) ([]Result, error) {
	results := make([]Result, 0, len(perturbations))

	for _, pert := range perturbations {
		lowParams, lowVal, err := a.perturbed(pert.Parameter, 1-pert.Range)
		if err != nil {
			return nil, err
		}
		highParams, highVal, err := a.perturbed(pert.Parameter, 1+pert.Range)
		if err != nil {
			return nil, err
		}

		lowTotal := a.engine.TotalCapEx(lowParams)
		highTotal := a.engine.TotalCapEx(highParams)

		results = append(results, Result{
			Parameter: pert.Parameter,
			LowValue:  lowVal,
			HighValue: highVal,
			LowTotal:  lowTotal,
			HighTotal: highTotal,
			Impact:    math.Abs(highTotal - lowTotal),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Impact > results[j].Impact
	})

	return results, nil
}

// ParameterImpact evaluates a single fractional change on one parameter
// and returns the new total plus the delta against baseline.
func (a *Analyzer) ParameterImpact(parameter string, change float64) (newTotal, delta float64, err error) {
	params, _, err := a.perturbed(parameter, 1+change)
	if err != nil {
		return 0, 0, err
	}
	newTotal = a.engine.TotalCapEx(params)
	return newTotal, newTotal - a.BaselineTotal(), nil
}

// perturbed clones the baseline with the named parameter scaled by
// multiplier and returns the clone plus the perturbed value. Integer
// schedule fields are rounded; delay months are floored at zero.
func (a *Analyzer) perturbed(name string, multiplier float64) (capex.ProjectParameters, float64, error) {
	p := a.base

	switch name {
	case ParamCapacity:
		p.CapacityMW *= multiplier
		return p, p.CapacityMW, nil
	case ParamEquipmentCostPerMW:
		p.EquipmentCostPerMW *= multiplier
		return p, p.EquipmentCostPerMW, nil
	case ParamLaborCostPerMW:
		p.LaborCostPerMW *= multiplier
		return p, p.LaborCostPerMW, nil
	case ParamPermittingCost:
		p.PermittingCost *= multiplier
		return p, p.PermittingCost, nil
	case ParamInterestRate:
		p.InterestRatePct *= multiplier
		return p, p.InterestRatePct, nil
	case ParamInflationRate:
		p.InflationRatePct *= multiplier
		return p, p.InflationRatePct, nil
	case ParamTimelineYears:
		p.TimelineYears = int(math.Round(float64(a.base.TimelineYears) * multiplier))
		return p, float64(p.TimelineYears), nil
	case ParamDelayMonths:
		months := int(math.Round(float64(a.base.DelayMonths) * multiplier))
		if months < 0 {
			months = 0
		}
		p.DelayMonths = months
		return p, float64(months), nil
	case ParamConstructionMonths:
		p.ConstructionMonths = int(math.Round(float64(a.base.ConstructionMonths) * multiplier))
		return p, float64(p.ConstructionMonths), nil
	default:
		return p, 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
}
