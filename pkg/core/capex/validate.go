package capex

import "fmt"

// ValidateParameters enforces the caller-side contract on p. The engine
// itself performs no bounds checking and is total over positive inputs;
// API handlers and CLI entry points call this before invoking it.
func ValidateParameters(p ProjectParameters) error {
	if p.CapacityMW <= 0 {
		return fmt.Errorf("capacity_mw must be positive, got %g", p.CapacityMW)
	}
	if p.TimelineYears <= 0 {
		return fmt.Errorf("timeline_years must be positive, got %d", p.TimelineYears)
	}
	if p.EquipmentCostPerMW < 0 {
		return fmt.Errorf("equipment_cost_per_mw must be non-negative, got %g", p.EquipmentCostPerMW)
	}
	if p.LaborCostPerMW < 0 {
		return fmt.Errorf("labor_cost_per_mw must be non-negative, got %g", p.LaborCostPerMW)
	}
	if p.PermittingCost < 0 {
		return fmt.Errorf("permitting_cost must be non-negative, got %g", p.PermittingCost)
	}
	if p.InterestRatePct < 0 || p.InterestRatePct > 100 {
		return fmt.Errorf("interest_rate_pct must be in [0, 100], got %g", p.InterestRatePct)
	}
	if p.InflationRatePct < 0 || p.InflationRatePct > 100 {
		return fmt.Errorf("inflation_rate_pct must be in [0, 100], got %g", p.InflationRatePct)
	}
	if p.DelayMonths < 0 {
		return fmt.Errorf("delay_months must be non-negative, got %d", p.DelayMonths)
	}
	if p.ConstructionMonths < 0 {
		return fmt.Errorf("construction_months must be non-negative, got %d", p.ConstructionMonths)
	}
	return nil
}
