package api

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// RetryableHTTPLogger wraps a zerolog logger so go-retryablehttp logs in
// our format.
type RetryableHTTPLogger struct {
	logger zerolog.Logger
}

var _ retryablehttp.LeveledLogger = RetryableHTTPLogger{}

// NewRetryableHTTPLogger creates a RetryableHTTPLogger.
func NewRetryableHTTPLogger(logger zerolog.Logger) RetryableHTTPLogger {
	return RetryableHTTPLogger{logger: logger}
}

func (l RetryableHTTPLogger) join(values ...interface{}) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(strs, " ")
}

// Error prints an error level message.
func (l RetryableHTTPLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Msg(strings.TrimSpace(msg + " " + l.join(keysAndValues...)))
}

// Warn prints a warn level message.
func (l RetryableHTTPLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Msg(strings.TrimSpace(msg + " " + l.join(keysAndValues...)))
}

// Debug prints a debug level message.
func (l RetryableHTTPLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Msg(strings.TrimSpace(msg + " " + l.join(keysAndValues...)))
}

// Info prints an info level message.
func (l RetryableHTTPLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Msg(strings.TrimSpace(msg + " " + l.join(keysAndValues...)))
}
