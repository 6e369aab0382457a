package capex

// Config holds the fixed cost constants the engine is constructed with.
// These are process-wide read-only values; the engine never mutates them.
type Config struct {
	// CapacityAdminPerMW is the per-MW administrative cost (interconnection,
	// transmission studies, etc.) added to other costs.
	CapacityAdminPerMW float64 `yaml:"capacity_admin_per_mw" json:"capacity_admin_per_mw"`

	// DelayCostPerMonth is the carrying cost added per month of permitting delay.
	DelayCostPerMonth float64 `yaml:"delay_cost_per_month" json:"delay_cost_per_month"`

	// Contingency is the fractional markup applied to the other-cost subtotal.
	Contingency float64 `yaml:"contingency" json:"contingency"`

	// EscalationFactors maps a cost category to its fractional annual
	// escalation rate. Reserved for per-category inflation; the public
	// formulas do not read it yet.
	EscalationFactors map[string]float64 `yaml:"escalation_factors" json:"escalation_factors"`
}

// DefaultConfig returns the built-in cost constants.
func DefaultConfig() Config {
	return Config{
		CapacityAdminPerMW: 25000,
		DelayCostPerMonth:  10000,
		Contingency:        0.10,
		EscalationFactors: map[string]float64{
			"equipment": 0.02,
			"labor":     0.07,
			"materials": 0.08,
		},
	}
}
