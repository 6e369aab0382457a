// Package finance provides the project-finance primitives that sit next
// to the CapEx engine: discounting, return metrics, escalation and
// currency formatting. Everything here is a pure function over plain
// slices and floats.
package finance

import "math"

// NPV discounts a series of cash flows indexed from year 0. Costs are
// negative, revenues positive; the rate is a percentage.
func NPV(cashFlows []float64, discountRatePct float64) float64 {
	rate := discountRatePct / 100

	npv := 0.0
	for i, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(i))
	}
	return npv
}

// IRR solves for the internal rate of return with Newton-Raphson.
// Returns the last iterate if convergence is not reached within 100
// steps, matching the usual tolerant treatment of pathological flows.
func IRR(cashFlows []float64, initialGuess float64) float64 {
	npvAt := func(rate float64) float64 {
		v := 0.0
		for i, cf := range cashFlows {
			v += cf / math.Pow(1+rate, float64(i))
		}
		return v
	}
	derivativeAt := func(rate float64) float64 {
		v := 0.0
		for i, cf := range cashFlows {
			v += -float64(i) * cf / math.Pow(1+rate, float64(i+1))
		}
		return v
	}

	rate := initialGuess
	for i := 0; i < 100; i++ {
		derivative := derivativeAt(rate)
		if math.Abs(derivative) < 1e-12 {
			break
		}

		newRate := rate - npvAt(rate)/derivative
		if math.Abs(newRate-rate) < 1e-8 {
			return newRate
		}
		rate = newRate
	}

	return rate
}

// PaybackPeriod returns the period index at which cumulative cash flow
// first turns non-negative, with linear interpolation inside that period.
// Returns +Inf when the investment is never recovered.
func PaybackPeriod(cashFlows []float64) float64 {
	cumulative := 0.0
	for i, cf := range cashFlows {
		cumulative += cf
		if cumulative >= 0 {
			if i > 0 && cf != 0 {
				fraction := (cumulative - cf) / cf
				return float64(i) - fraction
			}
			return float64(i)
		}
	}
	return math.Inf(1)
}

// EscalateCost compounds a cost forward at an annual escalation rate.
func EscalateCost(baseCost, escalationRatePct float64, years int) float64 {
	return baseCost * math.Pow(1+escalationRatePct/100, float64(years))
}

// RealDiscountRate converts a nominal rate to a real rate via the Fisher
// relation. Both inputs and the result are percentages.
func RealDiscountRate(nominalRatePct, inflationRatePct float64) float64 {
	return ((1+nominalRatePct/100)/(1+inflationRatePct/100) - 1) * 100
}
