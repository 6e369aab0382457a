package capex

import "math"

const hoursPerYear = 8760

// LevelizedCost computes LCOE in currency/MWh: total CapEx divided by the
// present value of lifetime generation. No OpEx term is modeled, so the
// result reflects CapEx amortization only.
//
// A zero lifetime or zero capacity factor leaves nothing to amortize over;
// by convention the result is 0 rather than a division fault.
func (e Engine) LevelizedCost(totalCapEx, capacityMW, capacityFactor float64, lifetimeYears int, discountRatePct float64) float64 {
	annualGeneration := capacityMW * capacityFactor * hoursPerYear
	rate := discountRatePct / 100

	pvGeneration := 0.0
	for year := 1; year <= lifetimeYears; year++ {
		pvGeneration += annualGeneration / math.Pow(1+rate, float64(year))
	}

	if pvGeneration > 0 {
		return totalCapEx / pvGeneration
	}
	return 0
}
