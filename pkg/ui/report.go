package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Reporter prints errors and render issues as compiler-style diagnostics:
//
//	notes.txt:3:7: error[MISMATCHED_TAG]: expected </info>, found </warn>
type Reporter struct {
	w       io.Writer
	errorSt lipgloss.Style
	warnSt  lipgloss.Style
	whereSt lipgloss.Style
}

// NewReporter creates a reporter writing to w. Styling follows the color
// support of w unless noColor is set.
func NewReporter(w io.Writer, noColor bool) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		w:       w,
		errorSt: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warnSt:  renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		whereSt: renderer.NewStyle().Bold(true),
	}
}

// Error reports a fatal error for source
func (r *Reporter) Error(source string, err error) {
	r.report(r.errorSt, "error", source, err)
}

// Issue reports a non-fatal render issue for source
func (r *Reporter) Issue(source string, issue *errors.MarkupError) {
	r.report(r.warnSt, "warning", source, issue)
}

func (r *Reporter) report(st lipgloss.Style, label, source string, err error) {
	where := source
	message := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		label += "[" + string(code) + "]"
		if pos := errors.GetErrorPosition(err); !pos.IsZero() {
			where += ":" + pos.String()
		}
		message = markupMessage(err)
	}

	logger := logging.GetLogger("ui")
	logger.Debug().
		Str("source", source).
		Str("code", string(errors.GetErrorCode(err))).
		Fields(errors.GetErrorDetails(err)).
		Msg(label)

	prefix := st.Render(label + ":")
	if where != "" {
		prefix = r.whereSt.Render(where+":") + " " + prefix
	}
	_, _ = fmt.Fprintln(r.w, prefix, message)
}

// markupMessage is the message of a coded error without its code and
// position, which the reporter prints separately.
func markupMessage(err error) string {
	e := errors.AsMarkupError(err)
	if e.Wrapped != nil {
		return e.Message + ": " + e.Wrapped.Error()
	}
	return e.Message
}
