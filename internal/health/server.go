// Package health provides HTTP handlers for container health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/bet-brew/pkg/betbrew"
)

// Checker defines a dependency the readiness probe verifies.
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context) error

// Check calls f(ctx).
func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp,omitempty"`
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
}

// ReadyResponse represents the JSON response for readiness check endpoints.
type ReadyResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Checks   map[string]string `json:"checks,omitempty"`
	Duration string            `json:"duration,omitempty"`
}

// Handler serves the health check endpoints.
type Handler struct {
	serviceName string
	version     string
	commit      string
	logger      *logrus.Logger
	checks      map[string]Checker
	mu          sync.RWMutex
	ready       bool
}

// Config holds the configuration for the health handler.
type Config struct {
	ServiceName string
	Version     string
	Commit      string
	Logger      *logrus.Logger
	Checks      map[string]Checker
}

// NewHandler creates a new health check handler. It starts out not ready.
func NewHandler(cfg Config) *Handler {
	checks := make(map[string]Checker, len(cfg.Checks))
	for name, c := range cfg.Checks {
		checks[name] = c
	}

	return &Handler{
		serviceName: cfg.ServiceName,
		version:     cfg.Version,
		commit:      cfg.Commit,
		logger:      cfg.Logger,
		checks:      checks,
	}
}

// SetReady marks the service as ready to accept traffic.
func (h *Handler) SetReady(ready bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready = ready
}

// IsReady returns whether the service is ready.
func (h *Handler) IsReady() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ready
}

// CalculatorCheck verifies the calculator against a known worked example:
// a stake of 10 at odds 3.0 against a starting price of 2.0 has an EV of 5.
func CalculatorCheck(calc *betbrew.Calculator) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		ev, err := calc.CalculateEV(10, 3, 2)
		if err != nil {
			return err
		}
		if math.Abs(ev-5) > 1e-9 {
			return fmt.Errorf("calculator self-check returned %v, want 5", ev)
		}
		return nil
	})
}

// HandleHealth handles the /health endpoint - basic liveness check.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Service:   h.serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Commit:    h.commit,
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleLive handles the /live endpoint - kubernetes liveness probe.
func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "ok",
		Service: h.serviceName,
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleReady handles the /ready endpoint - runs every registered check.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	checks := make(map[string]string)
	allHealthy := true

	// Check if manually marked as not ready
	if !h.IsReady() {
		allHealthy = false
		checks["service"] = "not_ready"
	} else {
		checks["service"] = "ok"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name].Check(ctx); err != nil {
			allHealthy = false
			checks[name] = fmt.Sprintf("error: %v", err)
			if h.logger != nil {
				h.logger.WithError(err).WithField("check", name).Warn("Readiness check failed")
			}
		} else {
			checks[name] = "ok"
		}
	}

	response := ReadyResponse{
		Service:  h.serviceName,
		Checks:   checks,
		Duration: time.Since(start).String(),
	}

	if allHealthy {
		response.Status = "ok"
		writeJSON(w, http.StatusOK, response)
		return
	}
	response.Status = "not_ready"
	writeJSON(w, http.StatusServiceUnavailable, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
