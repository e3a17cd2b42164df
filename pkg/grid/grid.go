package grid

import (
	"strings"

	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/logging"
	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/arthur-debert/markup/pkg/style"
	"github.com/rs/zerolog"
)

// Grid is the rendered output of a markup document
type Grid struct {
	// Lines are the encoded output lines, without trailing newlines.
	Lines []string
	// Width is the widest line in display cells, ignoring escape sequences
	// and HTML tags.
	Width int
	// Issues are non-fatal problems found while rendering, such as malformed
	// tables or unknown token types.
	Issues []*errors.MarkupError
}

// String joins the lines with newlines
func (g *Grid) String() string {
	return strings.Join(g.Lines, "\n")
}

// RenderString parses markup and renders it
func RenderString(input string, opts Options) (*Grid, error) {
	opts = opts.withDefaults()
	nodes, err := markup.ParseWithOptions(input, markup.ParseOptions{MaxDepth: opts.MaxDepth})
	if err != nil {
		return nil, err
	}
	return Render(nodes, opts)
}

// Render lays out nodes and encodes them in opts.Format. The nodes are not
// modified and may be rendered again, concurrently or not.
func Render(nodes []markup.Node, opts Options) (*Grid, error) {
	r := newRenderer(opts)
	lines, err := r.layout(nodes, context{width: r.opts.Columns})
	if err != nil {
		return nil, err
	}

	g := &Grid{
		Lines:  make([]string, len(lines)),
		Width:  maxWidth(lines),
		Issues: r.issues,
	}
	for i, l := range lines {
		g.Lines[i] = encodeLine(l, r.opts.Format)
	}
	r.log.Trace().
		Str("format", r.opts.Format.String()).
		Int("columns", r.opts.Columns).
		Int("lines", len(g.Lines)).
		Int("width", g.Width).
		Int("issues", len(g.Issues)).
		Msg("Rendered markup")
	return g, nil
}

// renderer holds the state of one render call.
type renderer struct {
	opts   Options
	theme  *style.Theme
	issues []*errors.MarkupError
	cells  map[cellKey][]line
	log    zerolog.Logger
}

func newRenderer(opts Options) *renderer {
	opts = opts.withDefaults()
	return &renderer{
		opts:  opts,
		theme: opts.Theme,
		cells: make(map[cellKey][]line),
		log:   logging.GetLogger("grid"),
	}
}

// context is the inherited state passed by value down the tree.
type context struct {
	style style.Style
	nobr  bool
	width int
	depth int
}

func (c context) measuring() context {
	c.width = unbounded
	return c
}

// descend enters a tag, enforcing the nesting limit.
func (r *renderer) descend(ctx context, n markup.Node) (context, error) {
	ctx.depth++
	if ctx.depth > r.opts.MaxDepth {
		return ctx, errors.At(n.Pos(), errors.ErrDepthExceeded, "nesting depth exceeds limit of %d", r.opts.MaxDepth).
			WithDetail("limit", r.opts.MaxDepth)
	}
	return ctx, nil
}

// issue records a non-fatal problem. Table cells are laid out more than once,
// so repeats of the same problem are recorded once.
func (r *renderer) issue(pos markup.Position, code errors.ErrorCode, format string, args ...interface{}) {
	err := errors.At(pos, code, format, args...)
	for _, seen := range r.issues {
		if seen.Code == err.Code && seen.Pos == err.Pos && seen.Message == err.Message {
			return
		}
	}
	r.issues = append(r.issues, err)
	r.log.Debug().
		Str("code", string(code)).
		Str("pos", pos.String()).
		Msg(err.Message)
}

// layout collects and wraps nodes at ctx.width.
func (r *renderer) layout(nodes []markup.Node, ctx context) ([]line, error) {
	items, err := r.collect(nodes, ctx)
	if err != nil {
		return nil, err
	}
	return wrap(items, ctx.width), nil
}
