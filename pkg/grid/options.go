package grid

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/markup/pkg/formatting"
	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/arthur-debert/markup/pkg/style"
)

// Format is the output encoding of a render
type Format int

const (
	// FormatNone discards all styling and emits text and layout whitespace only
	FormatNone Format = iota
	// FormatANSI emits terminal escape sequences
	FormatANSI
	// FormatHTML emits escaped HTML with inline styles
	FormatHTML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatANSI:
		return "ansi"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "none", "plain", "text":
		return FormatNone, nil
	case "ansi", "term", "terminal":
		return FormatANSI, nil
	case "html":
		return FormatHTML, nil
	default:
		return FormatNone, fmt.Errorf("unknown format: %s", s)
	}
}

// DefaultColumns is the column budget used when Options.Columns is not set
const DefaultColumns = 80

// Options configures a single render. Options are read-only during a render.
type Options struct {
	Format Format

	// Columns is the line width budget; zero means DefaultColumns.
	Columns int

	// NormalizeFilename canonicalizes filelink targets; nil is identity.
	NormalizeFilename formatting.Normalizer
	// HumanizeFilename shortens normalized filelink labels; nil never does.
	HumanizeFilename formatting.Humanizer

	// StripPositions drops ":line:column" suffixes from filelink labels.
	StripPositions bool

	// MaxDepth bounds tag nesting; zero means markup.DefaultMaxDepth.
	MaxDepth int

	// Theme supplies semantic and token styles; nil means style.DefaultTheme().
	Theme *style.Theme
}

func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = markup.DefaultMaxDepth
	}
	if o.Theme == nil {
		o.Theme = style.DefaultTheme()
	}
	return o
}
