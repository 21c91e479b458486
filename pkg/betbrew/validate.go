package betbrew

import (
	"math"
	"strings"
)

// validateNumber rejects NaN and infinities, and values <= 0 when requirePositive is set.
func validateNumber(x float64, name string, requirePositive bool) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NewInvalidTypeError(name, "must be a valid number")
	}
	if requirePositive && x <= 0 {
		return NewOutOfRangeError(name, "must be greater than 0")
	}
	return nil
}

// validateOdds checks every element of an odds sequence. A nil slice is an empty sequence.
func validateOdds(allOdds []float64, name string) error {
	for _, odds := range allOdds {
		if err := validateNumber(odds, "odds in "+name+" array", true); err != nil {
			return err
		}
	}
	return nil
}

// validateResult rejects a result that overflowed to an infinity or NaN from finite inputs,
// such as a PnL at odds of 1e308.
func validateResult(v any) error {
	var values []float64
	switch r := v.(type) {
	case float64:
		values = []float64{r}
	case PnLResult:
		values = []float64{r.Profit, r.TotalReturn}
	case KellyResult:
		values = []float64{r.Fraction, r.Stake}
	case BrewResult:
		values = []float64{r.Margin, r.RawEV, r.RawROI, r.AdjustedEV, r.AdjustedROI}
	}

	for _, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return NewOutOfRangeError("result", "is not a finite number")
		}
	}
	return nil
}

// validateString rejects strings that are empty once trimmed.
func validateString(x, name string) error {
	if strings.TrimSpace(x) == "" {
		return NewInvalidTypeError(name, "must be a non-empty string")
	}
	return nil
}
