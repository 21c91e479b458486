package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/bet-brew/internal/logger"
	"github.com/yourusername/bet-brew/internal/metrics"
	"github.com/yourusername/bet-brew/pkg/betbrew"
)

// Calculation sources
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

// CalculationService runs named calculations and records their outcome
type CalculationService struct {
	calc   *betbrew.Calculator
	logger *logger.CalcLogger
}

// NewCalculationService creates a new calculation service
func NewCalculationService(calc *betbrew.Calculator, log *logrus.Logger) *CalculationService {
	return &CalculationService{
		calc:   calc,
		logger: logger.NewCalcLogger(log),
	}
}

// Calculator returns the underlying calculator
func (s *CalculationService) Calculator() *betbrew.Calculator {
	return s.calc
}

// Operations lists the operation names Call accepts
func (s *CalculationService) Operations() []string {
	return s.calc.Operations()
}

// Call dispatches operation with args, logging and counting the outcome under source
func (s *CalculationService) Call(source, operation string, args map[string]any) (any, error) {
	start := time.Now()
	result, err := s.calc.Call(operation, args)
	elapsed := time.Since(start)

	if err != nil {
		kind := betbrew.KindOf(err)
		if kind == "" {
			kind = "error"
		}
		metrics.RecordCalculation(operation, source, kind, elapsed.Seconds())
		s.logger.LogCalculationFailure(operation, source, kind, betbrew.FieldOf(err), err, elapsed)
		return nil, err
	}

	metrics.RecordCalculation(operation, source, "success", elapsed.Seconds())
	switch v := result.(type) {
	case betbrew.BrewResult:
		metrics.RecordBookmakerMargin(v.Margin)
	case float64:
		if operation == betbrew.OpCalculateBookmakerMargin {
			metrics.RecordBookmakerMargin(v)
		}
	}
	s.logger.LogCalculation(operation, source, result, elapsed)

	return result, nil
}
