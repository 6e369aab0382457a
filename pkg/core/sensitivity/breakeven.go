package sensitivity

import "math"

const (
	breakEvenLowMult  = 0.1
	breakEvenHighMult = 5.0
	breakEvenTol      = 1000 // currency units on total CapEx
	breakEvenMaxIter  = 100
)

// BreakEven finds the value of one parameter at which total CapEx reaches
// targetTotal, holding everything else at baseline. It bisects over a
// multiplier in [0.1, 5.0] of the baseline value, relying on total CapEx
// being monotonically non-decreasing in every cost parameter. If the
// target lies outside the searched band the best estimate at the final
// midpoint is returned.
func (a *Analyzer) BreakEven(parameter string, targetTotal float64) (float64, error) {
	low, high := breakEvenLowMult, breakEvenHighMult

	var value float64
	for i := 0; i < breakEvenMaxIter; i++ {
		mid := (low + high) / 2

		params, v, err := a.perturbed(parameter, mid)
		if err != nil {
			return 0, err
		}
		value = v

		total := a.engine.TotalCapEx(params)
		if math.Abs(total-targetTotal) < breakEvenTol {
			return value, nil
		}

		if total < targetTotal {
			low = mid
		} else {
			high = mid
		}
	}

	return value, nil
}
