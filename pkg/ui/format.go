// Package ui adapts markup output to the terminal: format and width
// detection, and reporting of errors and render issues.
package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/markup/pkg/config"
	"github.com/arthur-debert/markup/pkg/grid"
	"github.com/arthur-debert/markup/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ResolveFormat parses a format name, detecting it from output when the name
// is "auto" or empty
func ResolveFormat(name string, output *os.File) (grid.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case config.FormatAuto, "":
		return DetectFormat(output), nil
	default:
		return grid.ParseFormat(name)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) grid.Format {
	log := logging.GetLogger("ui")

	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		log.Debug().Msg("NO_COLOR set, using plain output")
		return grid.FormatNone
	}

	// Check if we're being piped or redirected
	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		log.Debug().Msg("Output is not a terminal, using plain output")
		return grid.FormatNone
	}

	// Check terminal color support
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		log.Debug().Msg("Terminal has no color support, using plain output")
		return grid.FormatNone
	}

	return grid.FormatANSI
}

// Columns returns configured when positive, else the width of the output
// terminal, else grid.DefaultColumns
func Columns(configured int, output *os.File) int {
	if configured > 0 {
		return configured
	}
	if output != nil && term.IsTerminal(int(output.Fd())) {
		if width, _, err := term.GetSize(int(output.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return grid.DefaultColumns
}
