package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/bet-brew/internal/service"
	"github.com/yourusername/bet-brew/pkg/betbrew"
)

type flagKind int

const (
	numberFlag flagKind = iota
	oddsFlag
	textFlag
)

// argFlag maps a command-line flag onto a named operation argument
type argFlag struct {
	flag  string
	arg   string
	usage string
	kind  flagKind
}

var (
	stakeFlag         = argFlag{"stake", "stakedAmount", "Amount staked", numberFlag}
	oddsTakenFlag     = argFlag{"odds", "oddsTaken", "Decimal odds taken", numberFlag}
	startingPriceFlag = argFlag{"starting-price", "startingPrice", "Decimal starting price", numberFlag}
	allOddsFlag       = argFlag{"all-odds", "allOdds", "Decimal odds of every outcome in the market, comma separated", oddsFlag}
	betOddsFlag       = argFlag{"bet-odds", "betOdds", "Decimal odds the bet was struck at", numberFlag}
	closingOddsFlag   = argFlag{"closing-odds", "closingOdds", "Decimal closing odds", numberFlag}
	probabilityFlag   = argFlag{"probability", "probability", "Estimated win probability between 0 and 1", numberFlag}
	bankrollFlag      = argFlag{"bankroll", "bankroll", "Available bankroll", numberFlag}
	decimalFlag       = argFlag{"decimal", "decimalOdds", "Decimal odds", numberFlag}
	fractionFlag      = argFlag{"fraction", "fraction", "Fractional odds such as 5/2", textFlag}
	moneylineFlag     = argFlag{"moneyline", "moneyline", "American moneyline odds such as -150 or +200", numberFlag}
)

// calculationCommands builds one subcommand per calculation
func (a *app) calculationCommands() []*cobra.Command {
	return []*cobra.Command{
		a.operationCmd("ev", "Expected value of a bet", betbrew.OpCalculateEV,
			"betbrew ev --stake 10 --odds 3 --starting-price 2",
			stakeFlag, oddsTakenFlag, startingPriceFlag),
		a.operationCmd("roi", "Return on investment of a bet, in percent", betbrew.OpCalculateROI,
			"betbrew roi --stake 10 --odds 3 --starting-price 2",
			stakeFlag, oddsTakenFlag, startingPriceFlag),
		a.operationCmd("margin", "Bookmaker margin of a market, in percent", betbrew.OpCalculateBookmakerMargin,
			"betbrew margin --all-odds 1.9,1.9",
			allOddsFlag),
		a.operationCmd("adjusted-probability", "Win probability with the bookmaker margin removed", betbrew.OpCalculateAdjustedProbability,
			"betbrew adjusted-probability --starting-price 2 --all-odds 2,2,2",
			startingPriceFlag, allOddsFlag),
		a.operationCmd("adjusted-ev", "Expected value against the margin-free probability", betbrew.OpCalculateAdjustedEV,
			"betbrew adjusted-ev --stake 10 --odds 3 --starting-price 2 --all-odds 2,2,2",
			stakeFlag, oddsTakenFlag, startingPriceFlag, allOddsFlag),
		a.operationCmd("adjusted-roi", "ROI against the margin-free probability, in percent", betbrew.OpCalculateAdjustedROI,
			"betbrew adjusted-roi --stake 10 --odds 3 --starting-price 2 --all-odds 2,2,2",
			stakeFlag, oddsTakenFlag, startingPriceFlag, allOddsFlag),
		a.operationCmd("brew", "Margin, raw and adjusted EV and ROI in one pass", betbrew.OpBrew,
			"betbrew brew --stake 10 --odds 3 --starting-price 2 --all-odds 2,2,2",
			stakeFlag, oddsTakenFlag, startingPriceFlag, allOddsFlag),
		a.operationCmd("pnl", "Profit and total return of a winning bet", betbrew.OpCalculatePnL,
			"betbrew pnl --odds 2.5 --stake 10",
			oddsTakenFlag, stakeFlag),
		a.operationCmd("clv", "Closing line value, in percent", betbrew.OpCalculateCLV,
			"betbrew clv --bet-odds 2.1 --closing-odds 2",
			betOddsFlag, closingOddsFlag),
		a.operationCmd("kelly", "Kelly criterion stake", betbrew.OpCalculateKellyStake,
			"betbrew kelly --odds 3 --probability 0.5 --bankroll 100",
			oddsTakenFlag, probabilityFlag, bankrollFlag),
		a.operationCmd("implied-probability", "Probability implied by decimal odds", betbrew.OpImpliedProbability,
			"betbrew implied-probability --decimal 4",
			decimalFlag),
	}
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between decimal, fractional and moneyline odds",
	}

	cmd.AddCommand(
		a.operationCmd("decimal-to-fractional", "Decimal odds to an n/1 fraction", betbrew.OpDecimalToFractional,
			"betbrew convert decimal-to-fractional --decimal 2.5",
			decimalFlag),
		a.operationCmd("fractional-to-decimal", "Fractional odds to decimal odds", betbrew.OpFractionalToDecimal,
			"betbrew convert fractional-to-decimal --fraction 5/2",
			fractionFlag),
		a.operationCmd("decimal-to-moneyline", "Decimal odds to American moneyline", betbrew.OpDecimalToMoneyline,
			"betbrew convert decimal-to-moneyline --decimal 2.5",
			decimalFlag),
		a.operationCmd("moneyline-to-decimal", "American moneyline to decimal odds", betbrew.OpMoneylineToDecimal,
			"betbrew convert moneyline-to-decimal --moneyline -200",
			moneylineFlag),
	)

	return cmd
}

// operationCmd builds a subcommand that runs op with the given flags as arguments.
// Flags left unset are omitted, so the calculator reports them as missing.
func (a *app) operationCmd(use, short, op, example string, flags ...argFlag) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := collectArgs(cmd, flags)
			if err != nil {
				return err
			}
			return a.run(cmd, op, args)
		},
	}

	for _, f := range flags {
		switch f.kind {
		case oddsFlag:
			cmd.Flags().Float64Slice(f.flag, nil, f.usage)
		case textFlag:
			cmd.Flags().String(f.flag, "", f.usage)
		default:
			cmd.Flags().Float64(f.flag, 0, f.usage)
		}
	}

	return cmd
}

func collectArgs(cmd *cobra.Command, flags []argFlag) (map[string]any, error) {
	args := make(map[string]any, len(flags))
	fs := cmd.Flags()

	for _, f := range flags {
		if !fs.Changed(f.flag) {
			continue
		}

		var (
			v   any
			err error
		)
		switch f.kind {
		case oddsFlag:
			v, err = fs.GetFloat64Slice(f.flag)
		case textFlag:
			v, err = fs.GetString(f.flag)
		default:
			v, err = fs.GetFloat64(f.flag)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read --%s: %w", f.flag, err)
		}
		args[f.arg] = v
	}

	return args, nil
}

func (a *app) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "call <operation> <json-arguments>",
		Short:   "Run any operation with a JSON object of arguments",
		Example: `betbrew call calculateEV '{"stakedAmount":10,"oddsTaken":3,"startingPrice":2}'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			var args map[string]any
			decoder := json.NewDecoder(strings.NewReader(argv[1]))
			decoder.UseNumber()
			if err := decoder.Decode(&args); err != nil {
				return fmt.Errorf("invalid arguments: %w", err)
			}
			if args == nil {
				return fmt.Errorf("invalid arguments: expected a JSON object")
			}
			return a.run(cmd, argv[0], args)
		},
	}
}

func (a *app) operationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operation names accepted by call and the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := a.svc.Operations()
			if a.cfg.Output.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string][]string{"operations": names})
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) run(cmd *cobra.Command, op string, args map[string]any) error {
	result, err := a.svc.Call(service.SourceCLI, op, args)
	if err != nil {
		return err
	}
	return a.print(cmd.OutOrStdout(), op, result)
}
