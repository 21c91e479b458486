package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerLevel(t *testing.T) {
	log := NewLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = NewLogger("not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerProductionFormatter(t *testing.T) {
	t.Setenv("BETBREW_APP_ENVIRONMENT", "production")

	log := NewLogger("info")
	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestNewLoggerDevelopmentFormatter(t *testing.T) {
	t.Setenv("BETBREW_APP_ENVIRONMENT", "")
	t.Setenv("ENVIRONMENT", "development")

	log := NewLogger("info")
	_, ok := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestCalcLoggerCalculation(t *testing.T) {
	log, buf := setupTestLogger()
	calcLogger := NewCalcLogger(log)

	calcLogger.LogCalculation("calculateEV", "cli", 5.0, 1500*time.Microsecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "calculator", logEntry["component"])
	assert.Equal(t, "calculateEV", logEntry["operation"])
	assert.Equal(t, "cli", logEntry["source"])
	assert.Equal(t, 5.0, logEntry["result"])
	assert.Equal(t, 1.5, logEntry["duration_ms"])
	assert.Equal(t, "debug", logEntry["level"])
}

func TestCalcLoggerFailure(t *testing.T) {
	log, buf := setupTestLogger()
	calcLogger := NewCalcLogger(log)

	calcLogger.LogCalculationFailure("calculateROI", "http", "out_of_range", "stakedAmount", errors.New("stakedAmount must be greater than 0"), time.Millisecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "out_of_range", logEntry["error_kind"])
	assert.Equal(t, "stakedAmount", logEntry["field"])
	assert.Equal(t, "stakedAmount must be greater than 0", logEntry["error"])
	assert.Equal(t, "warning", logEntry["level"])
}

func TestAccessLoggerRequest(t *testing.T) {
	log, buf := setupTestLogger()
	accessLogger := NewAccessLogger(log)

	accessLogger.LogRequest("req-1", "POST", "/api/v1/calculate/calculateEV", "127.0.0.1:5000", 200, 42, 2*time.Millisecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "http", logEntry["component"])
	assert.Equal(t, "req-1", logEntry["request_id"])
	assert.Equal(t, float64(200), logEntry["status"])
	assert.Equal(t, "info", logEntry["level"])
}

func TestAccessLoggerServerError(t *testing.T) {
	log, buf := setupTestLogger()
	accessLogger := NewAccessLogger(log)

	accessLogger.LogRequest("req-2", "GET", "/ready", "127.0.0.1:5000", 503, 0, time.Millisecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "error", logEntry["level"])
}

func TestAccessLoggerRateLimited(t *testing.T) {
	log, buf := setupTestLogger()
	accessLogger := NewAccessLogger(log)

	accessLogger.LogRateLimited("req-3", "/api/v1/operations", "10.0.0.1:1234")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "10.0.0.1:1234", logEntry["remote_addr"])
	assert.Equal(t, "warning", logEntry["level"])
}
