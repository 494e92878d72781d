// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"  DEBUG  ", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), tt.input)
	}
}

func TestNewLogger_AppliesLevel(t *testing.T) {
	log := NewLogger("gateway", "warn")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()
	assert.Equal(t, zerolog.Disabled, log.GetLevel())

	// Must not panic or write anywhere.
	log.Info().Str("key", "value").Msg("dropped")
}
