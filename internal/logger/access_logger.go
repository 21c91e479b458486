// Package logger provides HTTP access logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AccessLogger provides dedicated logging for API requests.
type AccessLogger struct {
	*logrus.Entry
}

// NewAccessLogger creates a new access logger.
func NewAccessLogger(baseLogger *logrus.Logger) *AccessLogger {
	return &AccessLogger{
		Entry: baseLogger.WithField("component", "http"),
	}
}

// LogRequest logs a completed request.
func (al *AccessLogger) LogRequest(requestID, method, path, remoteAddr string, status, bytes int, duration time.Duration) {
	entry := al.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      method,
		"path":        path,
		"remote_addr": remoteAddr,
		"status":      status,
		"bytes":       bytes,
		"duration_ms": durationMs(duration),
	})

	if status >= 500 {
		entry.Error("Request failed")
		return
	}
	entry.Info("Request completed")
}

// LogRateLimited logs a request rejected by the rate limiter.
func (al *AccessLogger) LogRateLimited(requestID, path, remoteAddr string) {
	al.WithFields(logrus.Fields{
		"request_id":  requestID,
		"path":        path,
		"remote_addr": remoteAddr,
	}).Warn("Request rate limited")
}
