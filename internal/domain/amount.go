package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PercentPlaces is the number of decimal places kept on utilization percentages.
const PercentPlaces = 2

var hundred = decimal.NewFromInt(100)

// AmountFromFloat converts a float amount into a decimal.
// NaN and infinities are rejected with ErrInvalidAmount; sign is checked by the caller.
func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: %v is not finite", ErrInvalidAmount, f)
	}
	return decimal.NewFromFloat(f), nil
}

// ParseAmount parses a textual amount such as "12.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}
	return amount, nil
}

// Percent returns 100 * part / whole rounded half away from zero to PercentPlaces.
// whole must not be zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return part.Mul(hundred).Div(whole).Round(PercentPlaces)
}
