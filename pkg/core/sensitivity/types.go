// Package sensitivity quantifies how much each input parameter drives
// total CapEx, producing the ranked impact data behind tornado charts.
// Perturbation is one-factor-at-a-time: every run holds all other
// parameters at baseline, so no interaction effects are modeled.
package sensitivity

import "errors"

// Parameter names accepted by the analyzer. They mirror the JSON field
// names of capex.ProjectParameters.
const (
	ParamCapacity           = "capacity_mw"
	ParamEquipmentCostPerMW = "equipment_cost_per_mw"
	ParamLaborCostPerMW     = "labor_cost_per_mw"
	ParamPermittingCost     = "permitting_cost"
	ParamInterestRate       = "interest_rate_pct"
	ParamInflationRate      = "inflation_rate_pct"
	ParamTimelineYears      = "timeline_years"
	ParamDelayMonths        = "delay_months"
	ParamConstructionMonths = "construction_months"
)

// ErrUnknownParameter is returned when a perturbation names a parameter
// that does not exist on ProjectParameters. Unknown names are an error,
// never silently skipped, so a typo cannot drop a bar from the chart.
var ErrUnknownParameter = errors.New("unknown sensitivity parameter")

// Perturbation names one parameter and the fractional range to vary it by
// (0.20 means evaluate at baseline*0.8 and baseline*1.2).
type Perturbation struct {
	Parameter string  `json:"parameter"`
	Range     float64 `json:"range"`
}

// Result records one parameter's evaluated bounds and impact on total CapEx.
type Result struct {
	Parameter string  `json:"parameter"`
	LowValue  float64 `json:"low_value"`
	HighValue float64 `json:"high_value"`
	LowTotal  float64 `json:"low_total"`
	HighTotal float64 `json:"high_total"`
	Impact    float64 `json:"impact"`
}

// Config is the sensitivity section of the engine configuration file.
type Config struct {
	DefaultRange float64  `yaml:"default_range" json:"default_range"`
	Parameters   []string `yaml:"parameters" json:"parameters"`
}

// DefaultPerturbations returns the classic tornado parameter set at a
// uniform range: the two unit costs, the two rates, and the permitting
// delay.
func DefaultPerturbations(rng float64) []Perturbation {
	return []Perturbation{
		{Parameter: ParamEquipmentCostPerMW, Range: rng},
		{Parameter: ParamLaborCostPerMW, Range: rng},
		{Parameter: ParamInterestRate, Range: rng},
		{Parameter: ParamDelayMonths, Range: rng},
		{Parameter: ParamInflationRate, Range: rng},
	}
}
