// Package testutils provides testing utilities shared by the staker manager
// packages: loggers, temporary directories, free ports and address fixtures.
// This package is intended for testing purposes only and should not be used
// in production code.
package testutils

import (
	"github.com/rs/zerolog"
	"os"
	"testing"
)

// Logger returns a zerolog.Logger configured for testing.
func Logger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(os.Stdout).Level(zerolog.DebugLevel)
}
