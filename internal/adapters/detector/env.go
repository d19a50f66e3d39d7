// Package detector inspects the environment to choose how console output is colored.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode is the kind of terminal the report is written to.
type OutputMode int

const (
	// ModeInteractive is a terminal outside CI; full color detection applies.
	ModeInteractive OutputMode = iota
	// ModePlain is a pipe, a file or a CI log; basic ANSI colors only.
	ModePlain
)

// DetectEnvironment returns the output mode for stdout.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

// Detect chooses the mode from TTY status and the value of CI.
func Detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModePlain
	}
	return ModeInteractive
}

// ColorProfile returns Ascii when NO_COLOR is set, ANSI in plain mode and
// the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	return ProfileFor(DetectEnvironment(), os.Getenv("NO_COLOR") != "")
}

// ProfileFor maps a mode to a color profile.
func ProfileFor(mode OutputMode, noColor bool) termenv.Profile {
	switch {
	case noColor:
		return termenv.Ascii
	case mode == ModePlain:
		return termenv.ANSI
	default:
		return termenv.EnvColorProfile()
	}
}
