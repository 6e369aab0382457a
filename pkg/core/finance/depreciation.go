package finance

import "fmt"

// DepreciationMethod selects the tax depreciation schedule.
type DepreciationMethod string

const (
	StraightLine DepreciationMethod = "straight_line"
	MACRS        DepreciationMethod = "macrs"
)

// macrsSchedules holds the half-year-convention percentage tables for the
// supported recovery periods.
var macrsSchedules = map[int][]float64{
	5:  {0.2, 0.32, 0.192, 0.1152, 0.1152, 0.0576},
	7:  {0.1429, 0.2449, 0.1749, 0.1249, 0.0893, 0.0892, 0.0893, 0.0446},
	10: {0.1, 0.18, 0.144, 0.1152, 0.0922, 0.0737, 0.0655, 0.0655, 0.0656, 0.0655, 0.0328},
}

// Depreciation returns the annual depreciation amounts for an asset.
// MACRS falls back to straight line when no table exists for assetLife.
func Depreciation(assetCost float64, method DepreciationMethod, assetLife int) ([]float64, error) {
	switch method {
	case StraightLine:
		return straightLine(assetCost, assetLife), nil

	case MACRS:
		percentages, ok := macrsSchedules[assetLife]
		if !ok {
			return straightLine(assetCost, assetLife), nil
		}
		schedule := make([]float64, len(percentages))
		for i, pct := range percentages {
			schedule[i] = assetCost * pct
		}
		return schedule, nil

	default:
		return nil, fmt.Errorf("unknown depreciation method: %q", method)
	}
}

func straightLine(assetCost float64, assetLife int) []float64 {
	annual := assetCost / float64(assetLife)
	schedule := make([]float64, assetLife)
	for i := range schedule {
		schedule[i] = annual
	}
	return schedule
}
