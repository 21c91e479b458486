package betbrew

import (
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// DecimalToFractional converts decimal odds to "<decimalOdds−1>/1".
// The fraction is never reduced: 2.5 → "1.5/1", 3 → "2/1".
// The subtraction is exact, so 1.1 → "0.1/1" rather than "0.10000000000000009/1".
func (c *Calculator) DecimalToFractional(decimalOdds float64) (string, error) {
	if err := validateNumber(decimalOdds, "decimalOdds", true); err != nil {
		return "", err
	}

	numerator := decimal.NewFromFloat(decimalOdds).Sub(one)
	return numerator.String() + "/1", nil
}

// FractionalToDecimal converts "<numerator>/<denominator>" to decimal odds: a/b + 1.
// A zero denominator is rejected with ErrOutOfRange.
func (c *Calculator) FractionalToDecimal(fraction string) (float64, error) {
	if err := validateString(fraction, "fraction"); err != nil {
		return 0, err
	}

	parts := strings.Split(strings.TrimSpace(fraction), "/")
	if len(parts) != 2 {
		return 0, NewInvalidTypeError("fraction", "must be in the form numerator/denominator")
	}

	numerator, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, NewInvalidTypeError("fraction", "numerator must be a valid number")
	}
	denominator, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, NewInvalidTypeError("fraction", "denominator must be a valid number")
	}
	if denominator.IsZero() {
		return 0, NewOutOfRangeError("fraction", "denominator must not be 0")
	}

	return numerator.Div(denominator).Add(one).InexactFloat64(), nil
}

// DecimalToMoneyline converts decimal odds to US moneyline odds.
// 2.5 → +150, 1.5 → −200. Decimal odds of exactly 1 have no moneyline.
func (c *Calculator) DecimalToMoneyline(decimalOdds float64) (float64, error) {
	if err := validateNumber(decimalOdds, "decimalOdds", true); err != nil {
		return 0, err
	}

	if decimalOdds >= 2 {
		return (decimalOdds - 1) * 100, nil
	}
	if decimalOdds == 1 {
		return 0, NewOutOfRangeError("decimalOdds", "must not be 1")
	}
	return -100 / (decimalOdds - 1), nil
}

// MoneylineToDecimal converts US moneyline odds to decimal odds.
// +150 → 2.5, −200 → 1.5. A moneyline of 0 is rejected with ErrOutOfRange.
func (c *Calculator) MoneylineToDecimal(moneyline float64) (float64, error) {
	if err := validateNumber(moneyline, "moneyline", false); err != nil {
		return 0, err
	}

	if moneyline > 0 {
		return moneyline/100 + 1, nil
	}
	if moneyline == 0 {
		return 0, NewOutOfRangeError("moneyline", "must not be 0")
	}
	return 1 - 100/moneyline, nil
}

// ImpliedProbability converts decimal odds to the probability they imply: 1/decimalOdds
func (c *Calculator) ImpliedProbability(decimalOdds float64) (float64, error) {
	if err := validateNumber(decimalOdds, "decimalOdds", true); err != nil {
		return 0, err
	}
	return 1 / decimalOdds, nil
}
