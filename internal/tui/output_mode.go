package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text for pipes and redirects.
	OutputModePlain OutputMode = iota

	// OutputModeStyled is colored, non-interactive output.
	OutputModeStyled

	// OutputModeInteractive is the full-screen Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name for logs and errors.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the richest mode the environment supports.
// plain forces unstyled output; noColor downgrades interactive to
// styled-less text per NO_COLOR convention.
func DetectOutputMode(plain, noColor bool) OutputMode {
	if plain {
		return OutputModePlain
	}

	if !IsTerminal(os.Stdout) {
		return OutputModePlain
	}

	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}

	if IsTerminal(os.Stdin) {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
