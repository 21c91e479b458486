// Package api exposes the calculator over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/bet-brew/internal/config"
	"github.com/yourusername/bet-brew/internal/health"
	"github.com/yourusername/bet-brew/internal/logger"
	"github.com/yourusername/bet-brew/internal/metrics"
	"github.com/yourusername/bet-brew/internal/service"
)

// maxBodyBytes bounds calculation request bodies
const maxBodyBytes = 1 << 20

// Server is the calculation API server.
type Server struct {
	cfg     *config.Config
	service *service.CalculationService
	health  *health.Handler
	logger  *logrus.Logger
	access  *logger.AccessLogger
	limiter *rate.Limiter
	router  chi.Router
	server  *http.Server
}

// NewServer creates a new API server and builds its routes.
func NewServer(cfg *config.Config, svc *service.CalculationService, healthHandler *health.Handler, log *logrus.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		service: svc,
		health:  healthHandler,
		logger:  log,
		access:  logger.NewAccessLogger(log),
		limiter: rate.NewLimiter(rate.Limit(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitBurst),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Probes
	r.Get("/health", s.health.HandleHealth)
	r.Get("/live", s.health.HandleLive)
	r.Get("/ready", s.health.HandleReady)

	if s.cfg.Metrics.Enabled {
		r.Method(http.MethodGet, s.cfg.Metrics.Path, metrics.Handler())
	}

	// Calculations
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Get("/operations", s.handleOperations)
		r.Post("/calculate/{operation}", s.handleCalculate)
	})

	return r
}

// ListenAndServe starts serving and blocks until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout(),
		WriteTimeout: s.cfg.Server.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(logrus.Fields{
			"port":        s.cfg.Server.Port,
			"environment": s.cfg.App.Environment,
		}).Info("API server starting")

		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.health.SetReady(true)

	select {
	case err, ok := <-errCh:
		if ok {
			s.health.SetReady(false)
			return fmt.Errorf("api server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.health.SetReady(false)
	s.logger.Info("API server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}
	return nil
}
