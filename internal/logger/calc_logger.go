// Package logger provides calculation-specific logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// CalcLogger provides dedicated logging for odds calculations.
type CalcLogger struct {
	*logrus.Entry
}

// NewCalcLogger creates a new calculation logger.
func NewCalcLogger(baseLogger *logrus.Logger) *CalcLogger {
	return &CalcLogger{
		Entry: baseLogger.WithField("component", "calculator"),
	}
}

// LogCalculation logs a successful calculation at debug level.
func (cl *CalcLogger) LogCalculation(operation, source string, result interface{}, duration time.Duration) {
	cl.WithFields(logrus.Fields{
		"operation":   operation,
		"source":      source,
		"result":      result,
		"duration_ms": durationMs(duration),
	}).Debug("Calculation completed")
}

// LogCalculationFailure logs a rejected calculation with the failing field.
func (cl *CalcLogger) LogCalculationFailure(operation, source, kind, field string, err error, duration time.Duration) {
	cl.WithFields(logrus.Fields{
		"operation":   operation,
		"source":      source,
		"error_kind":  kind,
		"field":       field,
		"duration_ms": durationMs(duration),
	}).WithError(err).Warn("Calculation rejected")
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
