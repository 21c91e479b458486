// Package betbrew calculates betting value metrics: expected value, ROI, bookmaker margin,
// margin-adjusted probability/EV/ROI, profit and loss, closing line value, Kelly stakes and
// odds-format conversions.
//
// Every operation is a pure function of its arguments. Inputs are validated in a fixed order
// and the first invalid argument fails the call with a *ValidationError whose Kind is
// ErrInvalidType or ErrOutOfRange.
package betbrew

// Calculator exposes the betting formulas. It holds no state and is safe for concurrent use.
type Calculator struct{}

// New creates a calculator
func New() *Calculator {
	return &Calculator{}
}

// CalculateEV returns the expected value of a stake struck at oddsTaken, using the starting
// price as the estimate of the true probability.
//
// Example: stake 10 at 3.0 with SP 2.0 → p=0.5 → 10·(0.5·2 − 0.5) = 5
func (c *Calculator) CalculateEV(stakedAmount, oddsTaken, startingPrice float64) (float64, error) {
	if err := validateNumber(stakedAmount, "stakedAmount", true); err != nil {
		return 0, err
	}
	if err := validateNumber(oddsTaken, "oddsTaken", true); err != nil {
		return 0, err
	}
	if err := validateNumber(startingPrice, "startingPrice", true); err != nil {
		return 0, err
	}

	impliedProbabilitySP := 1 / startingPrice
	return expectedValue(stakedAmount, oddsTaken, impliedProbabilitySP), nil
}

// CalculateROI returns EV as a percentage of the stake
func (c *Calculator) CalculateROI(stakedAmount, oddsTaken, startingPrice float64) (float64, error) {
	ev, err := c.CalculateEV(stakedAmount, oddsTaken, startingPrice)
	if err != nil {
		return 0, err
	}
	return ev / stakedAmount * 100, nil
}

// CalculateBookmakerMargin returns the overround of a market in percent:
// Σ(100/odds) − 100. An empty market yields −100.
func (c *Calculator) CalculateBookmakerMargin(allOdds []float64) (float64, error) {
	if err := validateOdds(allOdds, "allOdds"); err != nil {
		return 0, err
	}

	totalImpliedProbability := 0.0
	for _, odds := range allOdds {
		totalImpliedProbability += 100 / odds
	}
	return totalImpliedProbability - 100, nil
}

// CalculateAdjustedProbability strips the market margin from the starting price's implied
// probability: (1/startingPrice)·(100/(100+margin)).
// An empty allOdds has a margin of −100 and no fair probability, so it fails with
// ErrOutOfRange on field "allOdds" once every other argument has passed.
func (c *Calculator) CalculateAdjustedProbability(startingPrice float64, allOdds []float64) (float64, error) {
	if err := validateNumber(startingPrice, "startingPrice", true); err != nil {
		return 0, err
	}

	margin, err := c.CalculateBookmakerMargin(allOdds)
	if err != nil {
		return 0, err
	}
	if len(allOdds) == 0 {
		return 0, NewOutOfRangeError("allOdds", "must contain at least one price")
	}

	rawProbability := 1 / startingPrice
	return rawProbability * (100 / (100 + margin)), nil
}

// CalculateAdjustedEV is CalculateEV with the margin-adjusted probability in place of the
// raw starting-price probability.
func (c *Calculator) CalculateAdjustedEV(stakedAmount, oddsTaken, startingPrice float64, allOdds []float64) (float64, error) {
	if err := validateNumber(stakedAmount, "stakedAmount", true); err != nil {
		return 0, err
	}
	if err := validateNumber(oddsTaken, "oddsTaken", true); err != nil {
		return 0, err
	}

	adjustedProbability, err := c.CalculateAdjustedProbability(startingPrice, allOdds)
	if err != nil {
		return 0, err
	}
	return expectedValue(stakedAmount, oddsTaken, adjustedProbability), nil
}

// CalculateAdjustedROI returns adjusted EV as a percentage of the stake
func (c *Calculator) CalculateAdjustedROI(stakedAmount, oddsTaken, startingPrice float64, allOdds []float64) (float64, error) {
	adjustedEV, err := c.CalculateAdjustedEV(stakedAmount, oddsTaken, startingPrice, allOdds)
	if err != nil {
		return 0, err
	}
	return adjustedEV / stakedAmount * 100, nil
}

// CalculatePnL settles a winning bet. Neither argument has to be positive.
func (c *Calculator) CalculatePnL(oddsTaken, stakedAmount float64) (PnLResult, error) {
	if err := validateNumber(oddsTaken, "oddsTaken", false); err != nil {
		return PnLResult{}, err
	}
	if err := validateNumber(stakedAmount, "stakedAmount", false); err != nil {
		return PnLResult{}, err
	}

	totalReturn := oddsTaken * stakedAmount
	return PnLResult{
		Profit:      totalReturn - stakedAmount,
		TotalReturn: totalReturn,
	}, nil
}

// CalculateCLV returns closing line value in percent: (betOdds/closingOdds − 1)·100.
// Positive CLV means the bet beat the closing price.
func (c *Calculator) CalculateCLV(betOdds, closingOdds float64) (float64, error) {
	if err := validateNumber(betOdds, "betOdds", true); err != nil {
		return 0, err
	}
	if err := validateNumber(closingOdds, "closingOdds", true); err != nil {
		return 0, err
	}
	return (betOdds/closingOdds - 1) * 100, nil
}

// CalculateKellyStake sizes a bet with the Kelly criterion f = (b·p − q)/b where b is the net
// decimal odds. A negative fraction means no edge and yields a zero stake.
func (c *Calculator) CalculateKellyStake(oddsTaken, probability, bankroll float64) (KellyResult, error) {
	if err := validateNumber(oddsTaken, "oddsTaken", true); err != nil {
		return KellyResult{}, err
	}
	if oddsTaken <= 1 {
		return KellyResult{}, NewOutOfRangeError("oddsTaken", "must be greater than 1")
	}
	if err := validateNumber(probability, "probability", false); err != nil {
		return KellyResult{}, err
	}
	if probability < 0 || probability > 1 {
		return KellyResult{}, NewOutOfRangeError("probability", "must be between 0 and 1")
	}
	if err := validateNumber(bankroll, "bankroll", true); err != nil {
		return KellyResult{}, err
	}

	b := oddsTaken - 1
	q := 1 - probability
	fraction := (b*probability - q) / b

	stake := 0.0
	if fraction > 0 {
		stake = bankroll * fraction
	}
	return KellyResult{Fraction: fraction, Stake: stake}, nil
}

// Brew computes every value metric of a quote in one pass
func (c *Calculator) Brew(q AdjustedQuote) (BrewResult, error) {
	if err := validateNumber(q.StakedAmount, "stakedAmount", true); err != nil {
		return BrewResult{}, err
	}
	if err := validateNumber(q.OddsTaken, "oddsTaken", true); err != nil {
		return BrewResult{}, err
	}
	if err := validateNumber(q.StartingPrice, "startingPrice", true); err != nil {
		return BrewResult{}, err
	}

	margin, err := c.CalculateBookmakerMargin(q.AllOdds)
	if err != nil {
		return BrewResult{}, err
	}
	adjustedEV, err := c.CalculateAdjustedEV(q.StakedAmount, q.OddsTaken, q.StartingPrice, q.AllOdds)
	if err != nil {
		return BrewResult{}, err
	}
	rawEV, err := c.CalculateEV(q.StakedAmount, q.OddsTaken, q.StartingPrice)
	if err != nil {
		return BrewResult{}, err
	}

	return BrewResult{
		Margin:      margin,
		RawEV:       rawEV,
		RawROI:      rawEV / q.StakedAmount * 100,
		AdjustedEV:  adjustedEV,
		AdjustedROI: adjustedEV / q.StakedAmount * 100,
	}, nil
}

// CalculateEVQuote is CalculateEV for a structured quote
func (c *Calculator) CalculateEVQuote(q StakeQuote) (float64, error) {
	return c.CalculateEV(q.StakedAmount, q.OddsTaken, q.StartingPrice)
}

// CalculateROIQuote is CalculateROI for a structured quote
func (c *Calculator) CalculateROIQuote(q StakeQuote) (float64, error) {
	return c.CalculateROI(q.StakedAmount, q.OddsTaken, q.StartingPrice)
}

// CalculateBookmakerMarginQuote is CalculateBookmakerMargin for a structured quote
func (c *Calculator) CalculateBookmakerMarginQuote(q MarginQuote) (float64, error) {
	return c.CalculateBookmakerMargin(q.AllOdds)
}

// CalculateAdjustedProbabilityQuote is CalculateAdjustedProbability for a structured quote.
// Only StartingPrice and AllOdds are read.
func (c *Calculator) CalculateAdjustedProbabilityQuote(q AdjustedQuote) (float64, error) {
	return c.CalculateAdjustedProbability(q.StartingPrice, q.AllOdds)
}

// CalculateAdjustedEVQuote is CalculateAdjustedEV for a structured quote
func (c *Calculator) CalculateAdjustedEVQuote(q AdjustedQuote) (float64, error) {
	return c.CalculateAdjustedEV(q.StakedAmount, q.OddsTaken, q.StartingPrice, q.AllOdds)
}

// CalculateAdjustedROIQuote is CalculateAdjustedROI for a structured quote
func (c *Calculator) CalculateAdjustedROIQuote(q AdjustedQuote) (float64, error) {
	return c.CalculateAdjustedROI(q.StakedAmount, q.OddsTaken, q.StartingPrice, q.AllOdds)
}

// CalculatePnLQuote is CalculatePnL for a structured quote
func (c *Calculator) CalculatePnLQuote(q PnLQuote) (PnLResult, error) {
	return c.CalculatePnL(q.OddsTaken, q.StakedAmount)
}

// CalculateCLVQuote is CalculateCLV for a structured quote
func (c *Calculator) CalculateCLVQuote(q CLVQuote) (float64, error) {
	return c.CalculateCLV(q.BetOdds, q.ClosingOdds)
}

// CalculateKellyStakeQuote is CalculateKellyStake for a structured quote
func (c *Calculator) CalculateKellyStakeQuote(q KellyQuote) (KellyResult, error) {
	return c.CalculateKellyStake(q.OddsTaken, q.Probability, q.Bankroll)
}

// expectedValue = stake·(p·(odds−1) − (1−p))
func expectedValue(stakedAmount, oddsTaken, probability float64) float64 {
	return stakedAmount * (probability*(oddsTaken-1) - (1 - probability))
}
