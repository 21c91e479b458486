package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/yourusername/bet-brew/pkg/betbrew"
)

// resultEnvelope matches the HTTP API response body
type resultEnvelope struct {
	Operation string `json:"operation"`
	Result    any    `json:"result"`
}

func (a *app) print(w io.Writer, op string, result any) error {
	rounded := roundResult(result, a.cfg.Output.Precision)

	if a.cfg.Output.Format == "json" {
		return writeJSON(w, resultEnvelope{Operation: op, Result: rounded})
	}

	switch r := rounded.(type) {
	case float64:
		_, err := fmt.Fprintln(w, formatFloat(r))
		return err
	case string:
		_, err := fmt.Fprintln(w, r)
		return err
	case betbrew.PnLResult:
		return writeFields(w, [][2]string{
			{"profit", formatFloat(r.Profit)},
			{"totalReturn", formatFloat(r.TotalReturn)},
		})
	case betbrew.KellyResult:
		return writeFields(w, [][2]string{
			{"fraction", formatFloat(r.Fraction)},
			{"stake", formatFloat(r.Stake)},
		})
	case betbrew.BrewResult:
		return writeFields(w, [][2]string{
			{"margin", formatFloat(r.Margin)},
			{"rawEV", formatFloat(r.RawEV)},
			{"rawROI", formatFloat(r.RawROI)},
			{"adjustedEV", formatFloat(r.AdjustedEV)},
			{"adjustedROI", formatFloat(r.AdjustedROI)},
		})
	default:
		_, err := fmt.Fprintf(w, "%v\n", r)
		return err
	}
}

// roundResult rounds every float in result to places decimal places, half away from zero
func roundResult(result any, places int) any {
	switch r := result.(type) {
	case float64:
		return round(r, places)
	case betbrew.PnLResult:
		return betbrew.PnLResult{Profit: round(r.Profit, places), TotalReturn: round(r.TotalReturn, places)}
	case betbrew.KellyResult:
		return betbrew.KellyResult{Fraction: round(r.Fraction, places), Stake: round(r.Stake, places)}
	case betbrew.BrewResult:
		return betbrew.BrewResult{
			Margin:      round(r.Margin, places),
			RawEV:       round(r.RawEV, places),
			RawROI:      round(r.RawROI, places),
			AdjustedEV:  round(r.AdjustedEV, places),
			AdjustedROI: round(r.AdjustedROI, places),
		}
	default:
		return result
	}
}

func round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeFields(w io.Writer, fields [][2]string) error {
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-12s %s\n", f[0]+":", f[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
