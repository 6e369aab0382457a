// Package capex implements the capital-expenditure cost engine for
// renewable-energy projects. All calculations are pure functions over
// value types: identical inputs always produce identical outputs and
// nothing is cached or mutated between calls, so the engine is safe
// for concurrent use.
package capex

// ProjectParameters is the full input set for one CapEx calculation.
// Every field is required; validation and defaulting happen in the
// caller-facing layer (see ValidateParameters), never inside the engine.
type ProjectParameters struct {
	CapacityMW         float64 `json:"capacity_mw"`
	EquipmentCostPerMW float64 `json:"equipment_cost_per_mw"`
	LaborCostPerMW     float64 `json:"labor_cost_per_mw"`
	PermittingCost     float64 `json:"permitting_cost"`
	InterestRatePct    float64 `json:"interest_rate_pct"`
	InflationRatePct   float64 `json:"inflation_rate_pct"`
	TimelineYears      int     `json:"timeline_years"`
	DelayMonths        int     `json:"delay_months"`
	ConstructionMonths int     `json:"construction_months"`
}

// CostBreakdown holds the component costs of one calculation.
// Total is always the literal sum Equipment + Labor + Financing + Other.
type CostBreakdown struct {
	Equipment float64 `json:"equipment"`
	Labor     float64 `json:"labor"`
	Financing float64 `json:"financing"`
	Other     float64 `json:"other"`
	Total     float64 `json:"total"`
}
