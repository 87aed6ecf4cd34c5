// Package testutil provides common test helpers shared across packages.
package testutil

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// NewTestRNG returns a deterministic random source for reproducible tests.
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a logger that discards all output, for tests that
// exercise components requiring a logger.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
