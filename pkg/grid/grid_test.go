package grid_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/grid"
	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/arthur-debert/markup/pkg/style"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, input string, opts grid.Options) *grid.Grid {
	t.Helper()
	g, err := grid.RenderString(input, opts)
	require.NoError(t, err, input)
	return g
}

func plain(columns int) grid.Options {
	return grid.Options{Format: grid.FormatNone, Columns: columns}
}

func TestRenderExamples(t *testing.T) {
	t.Run("semantic tag in plain format", func(t *testing.T) {
		g := render(t, `<error>build failed</error>`, plain(80))
		assert.Equal(t, []string{"build failed"}, g.Lines)
		assert.Equal(t, 12, g.Width)
		assert.Empty(t, g.Issues)
	})

	t.Run("adjacent colors each reset", func(t *testing.T) {
		g := render(t, `<color fg="red">x</color><color fg="blue">y</color>`, grid.Options{Format: grid.FormatANSI})
		assert.Equal(t, []string{"\x1b[31mx\x1b[0m\x1b[34my\x1b[0m"}, g.Lines)
		assert.Equal(t, 2, g.Width)
	})

	t.Run("malformed table degrades to text", func(t *testing.T) {
		g := render(t, `<table><li>x</li></table>`, plain(80))
		assert.Equal(t, []string{"x"}, g.Lines)
		require.Len(t, g.Issues, 1)
		assert.Equal(t, errors.ErrStructure, g.Issues[0].Code)
	})

	t.Run("filesize uses binary units", func(t *testing.T) {
		g := render(t, `<filesize>1048576</filesize>`, plain(80))
		assert.Equal(t, []string{"1.0 MiB"}, g.Lines)
	})
}

func TestValueTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`<number>1234567</number>`, "1,234,567"},
		{`<number value="42" />`, "42"},
		{`<duration>1520</duration>`, "1.52s"},
		{`<duration approximate>3723000</duration>`, "1h"},
		{`<filesize> 2048 </filesize>`, "2.0 KiB"},
		{`<grammarNumber singular="file" plural="files">3</grammarNumber>`, "files"},
		{`<grammarNumber singular="file" plural="files">1</grammarNumber>`, "file"},
		{`<grammarNumber singular="file" plural="files" none="no files">0</grammarNumber>`, "no files"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			g := render(t, tt.input, plain(80))
			assert.Equal(t, []string{tt.want}, g.Lines)
		})
	}

	t.Run("formatted values move to the next line whole", func(t *testing.T) {
		g := render(t, `took <duration>150000</duration>`, plain(8))
		assert.Equal(t, []string{"took", "2m 30s"}, g.Lines)
	})

	t.Run("formatted values wider than the line are split", func(t *testing.T) {
		g := render(t, `total <number>123456789012</number> and <duration>150000</duration>`, grid.Options{Format: grid.FormatANSI, Columns: 6})
		assert.Equal(t, []string{"total", "123,45", "6,789,", "012", "and", "2m 30s"}, g.Lines)
		assert.LessOrEqual(t, g.Width, 6)
	})

	t.Run("filesize beyond int64", func(t *testing.T) {
		g := render(t, `<filesize>20000000000000000000</filesize>`, plain(80))
		assert.Equal(t, []string{"17 EiB"}, g.Lines)
	})
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.ErrorCode
	}{
		{"non numeric value", `<number>many</number>`, errors.ErrInvalidAttribute},
		{"unknown color", `<color fg="purple">x</color>`, errors.ErrInvalidAttribute},
		{"hyperlink without target", `<hyperlink>x</hyperlink>`, errors.ErrInvalidAttribute},
		{"bad highlight index", `<highlight i="first">x</highlight>`, errors.ErrInvalidAttribute},
		{"bad pad width", `<pad width="wide">x</pad>`, errors.ErrInvalidAttribute},
		{"bad list start", `<ol start="one"><li>x</li></ol>`, errors.ErrInvalidAttribute},
		{"parse errors surface", `<error>x</warn>`, errors.ErrMismatchedTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.RenderString(tt.input, plain(80))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err), "got %v", err)
		})
	}
}

func TestRenderDepthLimit(t *testing.T) {
	var node markup.Node = markup.Text("x")
	for i := 0; i < 5; i++ {
		node = markup.Tag(markup.TagInfo, nil, node)
	}
	nodes := []markup.Node{node}

	_, err := grid.Render(nodes, grid.Options{MaxDepth: 5})
	require.NoError(t, err)

	_, err = grid.Render(nodes, grid.Options{MaxDepth: 4})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDepthExceeded))
}

func TestWrapping(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		columns int
		want    []string
	}{
		{"greedy at spaces", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"spaces dropped at the break", "aaa   bbb", 4, []string{"aaa", "bbb"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"wide runes split by cell", "日本語テキスト", 6, []string{"日本語", "テキス", "ト"}},
		{"hard breaks", "a\n\nb", 80, []string{"a", "", "b"}},
		{"styled word is one chunk", "a<emphasis>bc</emphasis>d e", 4, []string{"abcd", "e"}},
		{"nobr overflows", "<nobr>aaa bbb ccc</nobr>", 5, []string{"aaa bbb ccc"}},
		{"inner spacing kept", "a  b", 80, []string{"a  b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := render(t, tt.input, plain(tt.columns))
			assert.Equal(t, tt.want, g.Lines)
		})
	}
}

func TestTable(t *testing.T) {
	t.Run("columns sized to widest cell", func(t *testing.T) {
		input := `<table>
  <tr><td>a</td><td align="right">1</td></tr>
  <tr><td>bbb</td><td align="right">22</td></tr>
</table>`
		g := render(t, input, plain(80))
		assert.Equal(t, []string{"a    1", "bbb 22"}, g.Lines)
		assert.Empty(t, g.Issues)
	})

	t.Run("widest column shrinks to fit", func(t *testing.T) {
		input := `<table><tr><td>aaaa bbbb cccc</td><td>x</td></tr></table>`
		g := render(t, input, plain(10))
		assert.Equal(t, []string{"aaaa     x", "bbbb      ", "cccc      "}, g.Lines)
	})

	t.Run("short rows are padded", func(t *testing.T) {
		g := render(t, `<table><tr><td>a</td><td>b</td></tr><tr><td>c</td></tr></table>`, plain(80))
		assert.Equal(t, []string{"a b", "c  "}, g.Lines)
	})

	t.Run("text around a table", func(t *testing.T) {
		g := render(t, "before\n<table><tr><td>x</td></tr></table>\nafter", plain(80))
		assert.Equal(t, []string{"before", "x", "after"}, g.Lines)
	})

	t.Run("cell outside of a row", func(t *testing.T) {
		g := render(t, `<table><tr><tr>x</tr></tr></table>`, plain(80))
		assert.Equal(t, []string{"x"}, g.Lines)
		require.Len(t, g.Issues, 1)
		assert.Equal(t, errors.ErrStructure, g.Issues[0].Code)
	})

	t.Run("orphan row", func(t *testing.T) {
		g := render(t, `<tr><td>x</td></tr>`, plain(80))
		assert.Equal(t, []string{"x"}, g.Lines)
		require.Len(t, g.Issues, 1)
	})
}

func TestLists(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		columns int
		want    []string
	}{
		{"bullets", `<ul><li>one</li><li>two</li></ul>`, 80, []string{"- one", "- two"}},
		{"numbers align", `<ol start="9"><li>a</li><li>b</li></ol>`, 80, []string{" 9. a", "10. b"}},
		{"reversed", `<ol reversed><li>a</li><li>b</li></ol>`, 80, []string{"2. a", "1. b"}},
		{"hanging indent", `<ul><li>aaa bbb</li></ul>`, 5, []string{"- aaa", "  bbb"}},
		{"nested", `<ul><li>a<ul><li>b</li></ul></li></ul>`, 80, []string{"- a", "  - b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := render(t, tt.input, plain(tt.columns))
			assert.Equal(t, tt.want, g.Lines)
		})
	}

	t.Run("non item child degrades", func(t *testing.T) {
		g := render(t, `<ul>oops</ul>`, plain(80))
		assert.Equal(t, []string{"oops"}, g.Lines)
		require.Len(t, g.Issues, 1)
		assert.Equal(t, errors.ErrStructure, g.Issues[0].Code)
	})
}

func TestRuleAndPad(t *testing.T) {
	t.Run("rule spans the budget", func(t *testing.T) {
		g := render(t, `<hr />`, plain(5))
		assert.Equal(t, []string{strings.Repeat("━", 5)}, g.Lines)
		assert.Equal(t, 5, g.Width)
	})

	t.Run("labelled rule", func(t *testing.T) {
		g := render(t, `<hr>Title</hr>`, plain(12))
		assert.Equal(t, []string{"━━ Title ━━━"}, g.Lines)
	})

	t.Run("pad", func(t *testing.T) {
		assert.Equal(t, []string{"ab   |"}, render(t, `<pad width="5">ab</pad>|`, plain(80)).Lines)
		assert.Equal(t, []string{"   ab"}, render(t, `<pad width="5" align="right">ab</pad>`, plain(80)).Lines)
		assert.Equal(t, []string{"a   b"}, render(t, `a<pad width="3" />b`, plain(80)).Lines)
		assert.Equal(t, []string{"abcdef"}, render(t, `<pad width="2">abcdef</pad>`, plain(80)).Lines)
	})

	t.Run("pad is capped at the line width", func(t *testing.T) {
		g := render(t, `<pad width="9999999999" />`, plain(10))
		assert.Equal(t, []string{strings.Repeat(" ", 10)}, g.Lines)

		g = render(t, `<pad width="8">ab</pad>|`, plain(5))
		assert.Equal(t, []string{"ab   ", "|"}, g.Lines)
	})

	t.Run("long rule label wraps", func(t *testing.T) {
		g := render(t, `<hr>a long title here</hr>`, plain(12))
		assert.Equal(t, []string{"━━ a long ━━", "title", "here"}, g.Lines)
	})
}

func TestTokens(t *testing.T) {
	t.Run("known type is classed in html", func(t *testing.T) {
		g := render(t, `<token type="keyword">if</token>`, grid.Options{Format: grid.FormatHTML})
		assert.Equal(t, []string{`<span class="token keyword" style="color: #00cdcd">if</span>`}, g.Lines)
		assert.Empty(t, g.Issues)
	})

	t.Run("unknown type is unstyled with an issue", func(t *testing.T) {
		g := render(t, `<token type="macro">x</token>`, grid.Options{Format: grid.FormatANSI})
		assert.Equal(t, []string{"x"}, g.Lines)
		require.Len(t, g.Issues, 1)
		assert.Equal(t, errors.ErrUnknownTokenType, g.Issues[0].Code)
		assert.Equal(t, markup.Position{Offset: 0, Line: 1, Column: 1}, g.Issues[0].Pos)
	})

	t.Run("missing type", func(t *testing.T) {
		g := render(t, `<token>x</token>`, plain(80))
		require.Len(t, g.Issues, 1)
		assert.Equal(t, errors.ErrUnknownTokenType, g.Issues[0].Code)
	})
}

func TestLinks(t *testing.T) {
	opts := grid.Options{
		Format:            grid.FormatHTML,
		NormalizeFilename: filepath.Clean,
		HumanizeFilename: func(name string) (string, bool) {
			if strings.HasPrefix(name, "src/") {
				return strings.TrimPrefix(name, "src/"), true
			}
			return "", false
		},
	}

	t.Run("hyperlink label defaults to target", func(t *testing.T) {
		g := render(t, `<hyperlink target="https://example.com" />`, plain(80))
		assert.Equal(t, []string{"https://example.com"}, g.Lines)
	})

	t.Run("hyperlink in ansi", func(t *testing.T) {
		g := render(t, `<hyperlink target="https://example.com">docs</hyperlink>`, grid.Options{Format: grid.FormatANSI})
		require.Len(t, g.Lines, 1)
		assert.Contains(t, g.Lines[0], "\x1b]8;;https://example.com\x1b\\")
		assert.Equal(t, 4, g.Width)
		assert.Equal(t, 4, ansi.StringWidth(g.Lines[0]))
	})

	t.Run("filelink links the normalized path and shows the humanized one", func(t *testing.T) {
		g := render(t, `<filelink target="src/./main.go" line="12" column="3" />`, opts)
		require.Len(t, g.Lines, 1)
		assert.Contains(t, g.Lines[0], `href="file://src/main.go"`)
		assert.Contains(t, g.Lines[0], ">main.go:12:3<")
	})

	t.Run("humanizer may decline", func(t *testing.T) {
		o := opts
		o.Format = grid.FormatNone
		g := render(t, `<filelink target="lib/./a.go" line="4" />`, o)
		assert.Equal(t, []string{"lib/a.go:4"}, g.Lines)
	})

	t.Run("strip positions", func(t *testing.T) {
		o := opts
		o.Format = grid.FormatNone
		o.StripPositions = true
		g := render(t, `<filelink target="src/main.go" line="12" column="3" />`, o)
		assert.Equal(t, []string{"main.go"}, g.Lines)
	})

	t.Run("children replace the label", func(t *testing.T) {
		g := render(t, `<filelink target="src/main.go" line="1">entry point</filelink>`, opts)
		assert.Contains(t, g.Lines[0], ">entry point<")
		assert.Contains(t, g.Lines[0], `href="file://src/main.go"`)
	})
}

func TestHTMLEscapes(t *testing.T) {
	g := render(t, `a \< b & "c"`, grid.Options{Format: grid.FormatHTML})
	assert.Equal(t, []string{"a &lt; b &amp; &#34;c&#34;"}, g.Lines)
	assert.Equal(t, 11, g.Width)
}

func TestCustomTheme(t *testing.T) {
	theme, err := style.ParseTheme([]byte("styles:\n  error:\n    foreground: green\n"))
	require.NoError(t, err)

	g := render(t, `<error>x</error>`, grid.Options{Format: grid.FormatANSI, Theme: theme})
	assert.Equal(t, []string{"\x1b[32mx\x1b[0m"}, g.Lines)
}

func TestInheritedStyles(t *testing.T) {
	g := render(t, `<emphasis><color fg="red">a</color>b</emphasis>`, grid.Options{Format: grid.FormatANSI})
	assert.Equal(t, []string{"\x1b[31;1ma\x1b[0m\x1b[1mb\x1b[0m"}, g.Lines)
}

func TestGridString(t *testing.T) {
	g := render(t, "a\nb", plain(80))
	assert.Equal(t, "a\nb", g.String())
}

// documents exercises every layout feature at once.
var documents = []string{
	`<error>build failed</error> in <duration>1520</duration> while compiling <filelink target="src/main.go" line="3" />`,
	`<emphasis>Summary</emphasis>
<table>
  <tr><td>files</td><td align="right"><number>1234567</number></td></tr>
  <tr><td>a much longer description that has to wrap inside its cell</td><td align="right"><filesize>1048576</filesize></td></tr>
</table>
<hr>details</hr>
<ol><li><warn>first</warn> item with some text</li><li><info>second</info> <token type="keyword">if</token> x</li></ol>`,
	`<ul><li>aaaa bbbb cccc dddd eeee ffff gggg</li><li><highlight i="2">hhhh</highlight> iiii</li></ul> trailing words after the list`,
	`<hyperlink target="https://example.com/very/long/path">a link whose label is long enough to wrap</hyperlink> <dim>and dim text</dim>`,
	`total <number>123456789012</number> and <duration>150000</duration> <pad width="9999999999">x</pad> <filesize>20000000000000000000</filesize> <hr>a rule label that is long</hr>`,
}

func TestWidthBound(t *testing.T) {
	for _, columns := range []int{12, 20, 40, 80} {
		for _, doc := range documents {
			g := render(t, doc, grid.Options{Format: grid.FormatANSI, Columns: columns})
			for _, l := range g.Lines {
				assert.LessOrEqual(t, ansi.StringWidth(l), columns, "%q at %d columns", l, columns)
			}
			assert.LessOrEqual(t, g.Width, columns)
		}
	}
}

func TestANSIBalanced(t *testing.T) {
	for _, doc := range documents {
		g := render(t, doc, grid.Options{Format: grid.FormatANSI, Columns: 30})
		for _, l := range g.Lines {
			opens := strings.Count(l, "\x1b[")
			resets := strings.Count(l, "\x1b[0m")
			assert.Equal(t, opens, 2*resets, "every SGR start has one reset: %q", l)
		}
	}
}

func TestDeeplyNestedTables(t *testing.T) {
	const depth = 60
	input := strings.Repeat("<table><tr><td>", depth) + "deep" + strings.Repeat("</td></tr></table>", depth)
	g := render(t, input, plain(40))
	assert.Equal(t, []string{"deep"}, g.Lines)
}

func TestTableColumnsConsistent(t *testing.T) {
	g := render(t, documents[1], plain(30))
	var widths []int
	for _, l := range g.Lines[1:] {
		if strings.HasPrefix(l, "━") {
			break
		}
		widths = append(widths, ansi.StringWidth(l))
	}
	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	for _, doc := range documents {
		nodes, err := markup.Parse(doc)
		require.NoError(t, err)
		snapshot := markup.Serialize(nodes)

		first, err := grid.Render(nodes, grid.Options{Format: grid.FormatANSI, Columns: 40})
		require.NoError(t, err)
		second, err := grid.Render(nodes, grid.Options{Format: grid.FormatANSI, Columns: 40})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, snapshot, markup.Serialize(nodes), "render does not modify the tree")
	}
}

func TestPlainTextRoundTrip(t *testing.T) {
	for _, s := range []string{"plain", "a < b", `C:\dir\file`, "  indented", "two  spaces", "trailing "} {
		g := render(t, markup.Escape(s), plain(80))
		assert.Equal(t, s, g.String())
	}
}

func TestPlainTextRoundTripFromTree(t *testing.T) {
	nodes := []markup.Node{
		markup.Text("see "),
		markup.Tag(markup.TagEmphasis, nil,
			markup.Text("bold "),
			markup.Tag(markup.TagColor, markup.Attrs("fg", "red"), markup.Text("and red")),
		),
		markup.Text(" then "),
		markup.Tag(markup.TagHyperlink, markup.Attrs("target", "https://example.com"),
			markup.Tag(markup.TagUnderline, nil, markup.Text("a link")),
		),
		markup.Text(" "),
		markup.Tag(markup.TagNobr, nil, markup.Text("kept together")),
		markup.Text(" if a < b\nsecond  line"),
	}

	g, err := grid.Render(nodes, plain(80))
	require.NoError(t, err)
	assert.Equal(t, markup.PlainText(nodes), g.String())
}

func TestControlCharacters(t *testing.T) {
	g := render(t, "a\tb\x1b[31mc\x07d", grid.Options{Format: grid.FormatANSI, Columns: 80})
	assert.Equal(t, []string{"a    bcd"}, g.Lines)
	assert.Equal(t, 8, g.Width)

	g = render(t, "<nobr>x\ty</nobr>", plain(80))
	assert.Equal(t, []string{"x    y"}, g.Lines)
}

func TestHighlightIndexWraps(t *testing.T) {
	for _, i := range []string{"-9223372036854775808", "-1", "0", "9223372036854775807"} {
		g, err := grid.RenderString(`<highlight i="`+i+`">x</highlight>`, grid.Options{Format: grid.FormatANSI})
		require.NoError(t, err, i)
		assert.Equal(t, 1, g.Width, i)
	}
}

func TestNormalizedTreeRendersTheSame(t *testing.T) {
	nodes, err := markup.Parse(`<filelink target="./src/main.go" line="3" column="7" /> <filelink target="./b.go" line="9" /> <filelink target="./c.go">c</filelink>`)
	require.NoError(t, err)

	trim := func(name string) string { return strings.TrimPrefix(name, "./") }
	humanize := func(name string) (string, bool) {
		return "main", name == "src/main.go"
	}

	for _, strip := range []bool{false, true} {
		want, err := grid.Render(nodes, grid.Options{
			Format:            grid.FormatANSI,
			NormalizeFilename: trim,
			HumanizeFilename:  humanize,
			StripPositions:    strip,
		})
		require.NoError(t, err)

		normalized := markup.Normalize(nodes, markup.NormalizeOptions{
			NormalizeFilename: trim,
			HumanizeFilename:  humanize,
			StripPositions:    strip,
		})
		got, err := grid.Render(normalized, grid.Options{Format: grid.FormatANSI})
		require.NoError(t, err)
		assert.Equal(t, want.Lines, got.Lines, "strip positions %v", strip)
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]grid.Format{
		"ansi": grid.FormatANSI, "terminal": grid.FormatANSI,
		"HTML": grid.FormatHTML, "none": grid.FormatNone, "plain": grid.FormatNone,
	} {
		got, err := grid.ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
		assert.NotEqual(t, "unknown", got.String())
	}

	_, err := grid.ParseFormat("pdf")
	assert.Error(t, err)
}

func TestIssuesInsideTableCellsReportedOnce(t *testing.T) {
	g := render(t, `<table><tr><td><token type="macro">x</token> y z</td></tr></table>`, plain(4))
	require.Len(t, g.Issues, 1)
	assert.Equal(t, errors.ErrUnknownTokenType, g.Issues[0].Code)
}
