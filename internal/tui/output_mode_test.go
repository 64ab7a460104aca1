package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputModeString(t *testing.T) {
	tests := []struct {
		name string
		mode OutputMode
		want string
	}{
		{name: "plain", mode: OutputModePlain, want: "plain"},
		{name: "styled", mode: OutputModeStyled, want: "styled"},
		{name: "interactive", mode: OutputModeInteractive, want: "interactive"},
		{name: "unknown", mode: OutputMode(99), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestDetectOutputModePlainFlagWins(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, false))
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, true))
}

func TestDetectOutputModeNotATerminal(t *testing.T) {
	// Test binaries run without a TTY on stdout.
	mode := DetectOutputMode(false, false)
	assert.Equal(t, OutputModePlain, mode)
}
