package betbrew

// StakeQuote groups the inputs of the EV and ROI formulas
type StakeQuote struct {
	StakedAmount  float64 `json:"stakedAmount"`
	OddsTaken     float64 `json:"oddsTaken"`
	StartingPrice float64 `json:"startingPrice"`
}

// MarginQuote carries every decimal price of one market
type MarginQuote struct {
	AllOdds []float64 `json:"allOdds"`
}

// AdjustedQuote is a StakeQuote priced against the full market in MarginQuote
type AdjustedQuote struct {
	StakeQuote
	MarginQuote
}

// PnLQuote holds the inputs of a profit-and-loss settlement
type PnLQuote struct {
	OddsTaken    float64 `json:"oddsTaken"`
	StakedAmount float64 `json:"stakedAmount"`
}

// PnLResult is the outcome of a winning bet
type PnLResult struct {
	Profit      float64 `json:"profit"`
	TotalReturn float64 `json:"totalReturn"`
}

// CLVQuote pairs the price a bet was struck at with the market's closing price
type CLVQuote struct {
	BetOdds     float64 `json:"betOdds"`
	ClosingOdds float64 `json:"closingOdds"`
}

// KellyQuote holds the inputs of a Kelly criterion stake
type KellyQuote struct {
	OddsTaken   float64 `json:"oddsTaken"`
	Probability float64 `json:"probability"`
	Bankroll    float64 `json:"bankroll"`
}

// KellyResult is a Kelly criterion recommendation.
// Fraction is the full-Kelly share of bankroll and may be negative; Stake is never negative.
type KellyResult struct {
	Fraction float64 `json:"fraction"`
	Stake    float64 `json:"stake"`
}

// BrewResult holds every value metric of one AdjustedQuote
type BrewResult struct {
	Margin      float64 `json:"margin"`
	RawEV       float64 `json:"rawEV"`
	RawROI      float64 `json:"rawROI"`
	AdjustedEV  float64 `json:"adjustedEV"`
	AdjustedROI float64 `json:"adjustedROI"`
}
