package finance

import (
	"fmt"
	"math"
)

// FormatCurrency renders an amount with a K/M/B suffix, e.g. $1.5M.
func FormatCurrency(amount float64, decimals int) string {
	switch {
	case math.Abs(amount) >= 1e9:
		return fmt.Sprintf("$%.*fB", decimals, amount/1e9)
	case math.Abs(amount) >= 1e6:
		return fmt.Sprintf("$%.*fM", decimals, amount/1e6)
	case math.Abs(amount) >= 1e3:
		return fmt.Sprintf("$%.*fK", decimals, amount/1e3)
	default:
		return fmt.Sprintf("$%.*f", decimals, amount)
	}
}
