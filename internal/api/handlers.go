package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourusername/bet-brew/internal/service"
	"github.com/yourusername/bet-brew/pkg/betbrew"
)

// CalculationResponse is the body of a successful calculation
type CalculationResponse struct {
	Operation string `json:"operation"`
	Result    any    `json:"result"`
}

// OperationsResponse lists the available operations
type OperationsResponse struct {
	Operations []string `json:"operations"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, OperationsResponse{Operations: s.service.Operations()})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	operation := chi.URLParam(r, "operation")

	// Parse request
	var args map[string]any
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.UseNumber()
	if err := decoder.Decode(&args); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err), "bad_request", "")
		return
	}
	if args == nil {
		respondError(w, http.StatusBadRequest, "invalid request: body must be a JSON object", "bad_request", "")
		return
	}

	result, err := s.service.Call(service.SourceHTTP, operation, args)
	if err != nil {
		kind := betbrew.KindOf(err)
		respondError(w, statusFor(kind), err.Error(), kind, betbrew.FieldOf(err))
		return
	}

	respondJSON(w, http.StatusOK, CalculationResponse{Operation: operation, Result: result})
}

func statusFor(kind string) int {
	switch kind {
	case "invalid_type", "out_of_range":
		return http.StatusUnprocessableEntity
	case "unknown_operation":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON writes a JSON response. The body is encoded before the header goes out so an
// unencodable value becomes a 500 instead of an empty 200.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: fmt.Sprintf("failed to encode response: %v", err)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message, kind, field string) {
	respondJSON(w, status, ErrorResponse{Error: message, Kind: kind, Field: field})
}
