// Package scenario applies named what-if adjustments (optimistic,
// pessimistic, ...) to a base parameter set and evaluates them across
// standard project timelines.
package scenario

import (
	"math"

	"capex_forecast/pkg/core/capex"
)

// Adjustment shifts a base parameter set: multipliers on the unit costs
// and the permitting delay, plus an additive tweak to the interest rate
// in percentage points.
type Adjustment struct {
	Name                  string  `json:"name" yaml:"name"`
	EquipmentMultiplier   float64 `json:"equipment_multiplier" yaml:"equipment_multiplier"`
	LaborMultiplier       float64 `json:"labor_multiplier" yaml:"labor_multiplier"`
	DelayMultiplier       float64 `json:"delay_multiplier" yaml:"delay_multiplier"`
	InterestAdjustmentPct float64 `json:"interest_adjustment_pct" yaml:"interest_adjustment_pct"`
}

// Defaults returns the standard three-case scenario set.
func Defaults() []Adjustment {
	return []Adjustment{
		{Name: "Base Case", EquipmentMultiplier: 1.0, LaborMultiplier: 1.0, DelayMultiplier: 1.0, InterestAdjustmentPct: 0},
		{Name: "Optimistic", EquipmentMultiplier: 0.85, LaborMultiplier: 0.90, DelayMultiplier: 0.5, InterestAdjustmentPct: -0.5},
		{Name: "Pessimistic", EquipmentMultiplier: 1.25, LaborMultiplier: 1.30, DelayMultiplier: 2.0, InterestAdjustmentPct: 1.5},
	}
}

// DefaultTimelines returns the standard comparison horizons in years.
func DefaultTimelines() []int {
	return []int{3, 5, 10}
}

// Apply returns base with adj applied. The delay multiplier truncates to
// whole months.
func Apply(base capex.ProjectParameters, adj Adjustment) capex.ProjectParameters {
	p := base
	p.EquipmentCostPerMW = base.EquipmentCostPerMW * adj.EquipmentMultiplier
	p.LaborCostPerMW = base.LaborCostPerMW * adj.LaborMultiplier
	p.DelayMonths = int(float64(base.DelayMonths) * adj.DelayMultiplier)
	p.InterestRatePct = base.InterestRatePct + adj.InterestAdjustmentPct
	return p
}

// MatrixRow is one evaluated (timeline, scenario) cell.
type MatrixRow struct {
	TimelineYears int                 `json:"timeline_years"`
	Scenario      string              `json:"scenario"`
	Breakdown     capex.CostBreakdown `json:"breakdown"`
	TotalPerMW    float64             `json:"total_per_mw"`
}

// Matrix evaluates every scenario at every timeline. Rows come out
// timeline-major, scenarios in declaration order, so output order is
// deterministic.
func Matrix(engine capex.Engine, base capex.ProjectParameters, scenarios []Adjustment, timelines []int) []MatrixRow {
	rows := make([]MatrixRow, 0, len(timelines)*len(scenarios))

	for _, timeline := range timelines {
		for _, adj := range scenarios {
			p := Apply(base, adj)
			p.TimelineYears = timeline

			bd := engine.Breakdown(p)
			perMW := 0.0
			if p.CapacityMW > 0 {
				perMW = bd.Total / p.CapacityMW
			}

			rows = append(rows, MatrixRow{
				TimelineYears: timeline,
				Scenario:      adj.Name,
				Breakdown:     bd,
				TotalPerMW:    perMW,
			})
		}
	}

	return rows
}

// EscalationSeries projects a total cost forward year by year at the
// given inflation rate. Year 1 is the unescalated total.
func EscalationSeries(total, inflationRatePct float64, years int) []float64 {
	series := make([]float64, years)
	for year := 1; year <= years; year++ {
		series[year-1] = total * math.Pow(1+inflationRatePct/100, float64(year-1))
	}
	return series
}
