package betbrew

import (
	"fmt"
	"math"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Operation names accepted by Call
const (
	OpCalculateEV                  = "calculateEV"
	OpCalculateROI                 = "calculateROI"
	OpCalculateBookmakerMargin     = "calculateBookmakerMargin"
	OpCalculateAdjustedProbability = "calculateAdjustedProbability"
	OpCalculateAdjustedEV          = "calculateAdjustedEV"
	OpCalculateAdjustedROI         = "calculateAdjustedROI"
	OpCalculatePnL                 = "calculatePnL"
	OpDecimalToFractional          = "decimalToFractional"
	OpFractionalToDecimal          = "fractionalToDecimal"
	OpDecimalToMoneyline           = "decimalToMoneyline"
	OpMoneylineToDecimal           = "moneylineToDecimal"
	OpCalculateCLV                 = "calculateCLV"
	OpImpliedProbability           = "impliedProbability"
	OpCalculateKellyStake          = "calculateKellyStake"
	OpBrew                         = "brew"
)

type operation func(c *Calculator, args argReader) (any, error)

var operations = map[string]operation{
	OpCalculateEV: func(c *Calculator, args argReader) (any, error) {
		v, err := c.CalculateEV(args.number("stakedAmount"), args.number("oddsTaken"), args.number("startingPrice"))
		return result(v, err)
	},
	OpCalculateROI: func(c *Calculator, args argReader) (any, error) {
		v, err := c.CalculateROI(args.number("stakedAmount"), args.number("oddsTaken"), args.number("startingPrice"))
		return result(v, err)
	},
	OpCalculateBookmakerMargin: func(c *Calculator, args argReader) (any, error) {
		allOdds, err := args.odds("allOdds")
		if err != nil {
			return nil, err
		}
		v, err := c.CalculateBookmakerMargin(allOdds)
		return result(v, err)
	},
	OpCalculateAdjustedProbability: func(c *Calculator, args argReader) (any, error) {
		startingPrice := args.number("startingPrice")
		allOdds, err := args.odds("allOdds")
		if err != nil {
			return nil, firstError(validateNumber(startingPrice, "startingPrice", true), err)
		}
		v, err := c.CalculateAdjustedProbability(startingPrice, allOdds)
		return result(v, err)
	},
	OpCalculateAdjustedEV: func(c *Calculator, args argReader) (any, error) {
		q, err := args.adjustedQuote()
		if err != nil {
			return nil, err
		}
		v, err := c.CalculateAdjustedEVQuote(q)
		return result(v, err)
	},
	OpCalculateAdjustedROI: func(c *Calculator, args argReader) (any, error) {
		q, err := args.adjustedQuote()
		if err != nil {
			return nil, err
		}
		v, err := c.CalculateAdjustedROIQuote(q)
		return result(v, err)
	},
	OpCalculatePnL: func(c *Calculator, args argReader) (any, error) {
		v, err := c.CalculatePnL(args.number("oddsTaken"), args.number("stakedAmount"))
		return result(v, err)
	},
	OpDecimalToFractional: func(c *Calculator, args argReader) (any, error) {
		v, err := c.DecimalToFractional(args.number("decimalOdds"))
		return result(v, err)
	},
	OpFractionalToDecimal: func(c *Calculator, args argReader) (any, error) {
		fraction, err := args.text("fraction")
		if err != nil {
			return nil, err
		}
		v, err := c.FractionalToDecimal(fraction)
		return result(v, err)
	},
	OpDecimalToMoneyline: func(c *Calculator, args argReader) (any, error) {
		v, err := c.DecimalToMoneyline(args.number("decimalOdds"))
		return result(v, err)
	},
	OpMoneylineToDecimal: func(c *Calculator, args argReader) (any, error) {
		v, err := c.MoneylineToDecimal(args.number("moneyline"))
		return result(v, err)
	},
	OpCalculateCLV: func(c *Calculator, args argReader) (any, error) {
		v, err := c.CalculateCLV(args.number("betOdds"), args.number("closingOdds"))
		return result(v, err)
	},
	OpImpliedProbability: func(c *Calculator, args argReader) (any, error) {
		v, err := c.ImpliedProbability(args.number("decimalOdds"))
		return result(v, err)
	},
	OpCalculateKellyStake: func(c *Calculator, args argReader) (any, error) {
		v, err := c.CalculateKellyStake(args.number("oddsTaken"), args.number("probability"), args.number("bankroll"))
		return result(v, err)
	},
	OpBrew: func(c *Calculator, args argReader) (any, error) {
		q, err := args.adjustedQuote()
		if err != nil {
			return nil, err
		}
		v, err := c.Brew(q)
		return result(v, err)
	},
}

// Operations returns the names accepted by Call, sorted
func (c *Calculator) Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named operation with loosely typed arguments, such as a decoded JSON object.
//
// Arguments are checked in the operation's declared order. A missing, null or non-numeric
// number, a non-array allOdds, and a non-string fraction all fail with ErrInvalidType.
// A result that overflows to an infinity or NaN fails with ErrOutOfRange on field "result".
func (c *Calculator) Call(name string, args map[string]any) (any, error) {
	op, ok := operations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op(c, argReader(args))
}

type argReader map[string]any

// number yields NaN for a missing or non-numeric argument so the operation's own
// validateNumber reports it at its declared position.
func (a argReader) number(name string) float64 {
	raw, ok := a[name]
	if !ok || raw == nil {
		return math.NaN()
	}
	return toFloat(raw)
}

func (a argReader) odds(name string) ([]float64, error) {
	raw, ok := a[name]
	if !ok || raw == nil {
		return nil, NewInvalidTypeError(name, "must be an array")
	}

	var items []any
	if err := mapstructure.Decode(raw, &items); err != nil {
		return nil, NewInvalidTypeError(name, "must be an array")
	}

	allOdds := make([]float64, len(items))
	for i, item := range items {
		if item == nil {
			allOdds[i] = math.NaN()
			continue
		}
		allOdds[i] = toFloat(item)
	}
	return allOdds, nil
}

func (a argReader) text(name string) (string, error) {
	s, ok := a[name].(string)
	if !ok {
		return "", NewInvalidTypeError(name, "must be a non-empty string")
	}
	return s, nil
}

func (a argReader) adjustedQuote() (AdjustedQuote, error) {
	q := AdjustedQuote{
		StakeQuote: StakeQuote{
			StakedAmount:  a.number("stakedAmount"),
			OddsTaken:     a.number("oddsTaken"),
			StartingPrice: a.number("startingPrice"),
		},
	}

	allOdds, err := a.odds("allOdds")
	if err != nil {
		return q, firstError(
			validateNumber(q.StakedAmount, "stakedAmount", true),
			validateNumber(q.OddsTaken, "oddsTaken", true),
			validateNumber(q.StartingPrice, "startingPrice", true),
			err,
		)
	}
	q.AllOdds = allOdds
	return q, nil
}

// toFloat decodes ints, floats and json.Number; anything else becomes NaN.
func toFloat(raw any) float64 {
	var x float64
	if err := mapstructure.Decode(raw, &x); err != nil {
		return math.NaN()
	}
	return x
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func result[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if err := validateResult(v); err != nil {
		return nil, err
	}
	return v, nil
}
