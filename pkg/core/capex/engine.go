package capex

import "math"

// Engine computes CapEx cost components from project parameters.
// It carries only its construction-time Config; all methods are pure.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine from cfg. Zero-valued cost constants fall
// back to the built-in defaults so a partially specified config file
// still yields a usable engine.
func NewEngine(cfg Config) Engine {
	def := DefaultConfig()
	if cfg.CapacityAdminPerMW == 0 {
		cfg.CapacityAdminPerMW = def.CapacityAdminPerMW
	}
	if cfg.DelayCostPerMonth == 0 {
		cfg.DelayCostPerMonth = def.DelayCostPerMonth
	}
	if cfg.Contingency == 0 {
		cfg.Contingency = def.Contingency
	}
	if cfg.EscalationFactors == nil {
		cfg.EscalationFactors = def.EscalationFactors
	}
	return Engine{cfg: cfg}
}

// Config returns the constants the engine was constructed with.
func (e Engine) Config() Config {
	return e.cfg
}

// inflationMultiplier compounds the annual inflation rate over the full
// project timeline, not just the construction window.
func inflationMultiplier(inflationRatePct float64, timelineYears int) float64 {
	return math.Pow(1+inflationRatePct/100, float64(timelineYears))
}

// EquipmentCost returns the inflation-adjusted equipment cost.
func (e Engine) EquipmentCost(capacityMW, costPerMW float64, timelineYears int, inflationRatePct float64) float64 {
	base := capacityMW * costPerMW
	return base * inflationMultiplier(inflationRatePct, timelineYears)
}

// LaborCost returns the labor cost adjusted for inflation and for
// construction schedules shorter or longer than the 12-month reference.
func (e Engine) LaborCost(capacityMW, laborCostPerMW float64, timelineYears int, inflationRatePct float64, constructionMonths int) float64 {
	base := capacityMW * laborCostPerMW

	// 2% per month of deviation from a 12-month schedule, clamped so the
	// multiplier stays inside [0.8, 2.0].
	duration := 1 + float64(constructionMonths-12)*0.02
	if duration < 0.8 {
		duration = 0.8
	}
	if duration > 2.0 {
		duration = 2.0
	}

	return base * duration * inflationMultiplier(inflationRatePct, timelineYears)
}

// FinancingCost returns simple interest on the deployed principal over the
// timeline, plus a half-rate carrying cost for the permitting delay period.
// Interest here is linear in elapsed time, unlike the compounding inflation
// treatment in the equipment and labor formulas.
func (e Engine) FinancingCost(principal, interestRatePct float64, timelineYears, delayMonths int) float64 {
	annualRate := interestRatePct / 100
	interestCost := principal * annualRate * float64(timelineYears)
	delayPenalty := principal * annualRate * (float64(delayMonths) / 12) * 0.5
	return interestCost + delayPenalty
}

// OtherCost returns permitting/legal cost plus capacity-scaled
// administrative cost and delay-scaled carrying cost, marked up by the
// configured contingency.
func (e Engine) OtherCost(permittingCost, capacityMW float64, timelineYears, delayMonths int) float64 {
	capacityBased := capacityMW * e.cfg.CapacityAdminPerMW
	delayCosts := float64(delayMonths) * e.cfg.DelayCostPerMonth
	subtotal := permittingCost + capacityBased + delayCosts
	return subtotal * (1 + e.cfg.Contingency)
}

// Breakdown computes the full cost breakdown for p.
//
// Evaluation order matters: financing is charged on the capital actually
// deployed, so equipment, labor and other costs must be computed first.
func (e Engine) Breakdown(p ProjectParameters) CostBreakdown {
	// 1. Capital components
	equipment := e.EquipmentCost(p.CapacityMW, p.EquipmentCostPerMW, p.TimelineYears, p.InflationRatePct)
	labor := e.LaborCost(p.CapacityMW, p.LaborCostPerMW, p.TimelineYears, p.InflationRatePct, p.ConstructionMonths)
	other := e.OtherCost(p.PermittingCost, p.CapacityMW, p.TimelineYears, p.DelayMonths)

	// 2. Financing on the deployed principal
	principal := equipment + labor + other
	financing := e.FinancingCost(principal, p.InterestRatePct, p.TimelineYears, p.DelayMonths)

	return CostBreakdown{
		Equipment: equipment,
		Labor:     labor,
		Financing: financing,
		Other:     other,
		Total:     equipment + labor + financing + other,
	}
}

// TotalCapEx is the total-only convenience form of Breakdown.
func (e Engine) TotalCapEx(p ProjectParameters) float64 {
	return e.Breakdown(p).Total
}
