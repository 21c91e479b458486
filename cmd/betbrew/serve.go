package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/bet-brew/internal/api"
	"github.com/yourusername/bet-brew/internal/health"
	"github.com/yourusername/bet-brew/internal/metrics"
)

func (a *app) serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}

			if a.cfg.Metrics.Enabled {
				metrics.InitRegistry()
			}

			healthHandler := health.NewHandler(health.Config{
				ServiceName: a.cfg.App.Name,
				Version:     Version,
				Commit:      GitCommit,
				Logger:      a.logger,
				Checks: map[string]health.Checker{
					"calculator": health.CalculatorCheck(a.svc.Calculator()),
				},
			})

			// Set up signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.WithField("version", Version).Info("Starting bet-brew API")
			server := api.NewServer(a.cfg, a.svc, healthHandler, a.logger)
			if err := server.ListenAndServe(ctx); err != nil {
				return err
			}

			a.logger.Info("bet-brew API stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides server.port)")
	return cmd
}
