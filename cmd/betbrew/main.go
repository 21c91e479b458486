package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/bet-brew/internal/config"
	"github.com/yourusername/bet-brew/internal/logger"
	"github.com/yourusername/bet-brew/internal/service"
	"github.com/yourusername/bet-brew/pkg/betbrew"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// app holds the state shared by every subcommand
type app struct {
	configFile string
	logLevel   string
	output     string
	precision  int

	cfg    *config.Config
	logger *logrus.Logger
	svc    *service.CalculationService
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "betbrew",
		Short: "Betting value metrics and odds conversions",
		Long: `betbrew computes expected value, ROI, bookmaker margin, margin-adjusted
value, profit and loss, closing line value and Kelly stakes, and converts
between decimal, fractional and moneyline odds.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", config.DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format (text, json)")
	rootCmd.PersistentFlags().IntVarP(&a.precision, "precision", "p", 0, "Decimal places in printed results")

	rootCmd.AddCommand(a.calculationCommands()...)
	rootCmd.AddCommand(
		a.convertCmd(),
		a.callCmd(),
		a.operationsCmd(),
		a.serveCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the calculation service
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithDefaults(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.App.LogLevel = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = a.precision
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.NewLogger(cfg.App.LogLevel)
	a.svc = service.NewCalculationService(betbrew.New(), a.logger)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Skip configuration loading
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "betbrew %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}
