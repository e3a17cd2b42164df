package style

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Dim        bool   `yaml:"dim,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Strike     bool   `yaml:"strike,omitempty"`
	Inverse    bool   `yaml:"inverse,omitempty"`
}

// ThemeConfig represents the complete theme file
type ThemeConfig struct {
	Styles    map[string]StyleDef `yaml:"styles"`
	Highlight []StyleDef          `yaml:"highlight"`
	Tokens    map[string]StyleDef `yaml:"tokens"`
}

// Theme maps semantic names, highlight slots and token classes to styles.
// A Theme is read-only once built and safe to share between renders.
type Theme struct {
	styles    map[string]Style
	highlight []Style
	tokens    map[TokenType]Style
}

//go:embed theme.yaml
var embeddedTheme []byte

var defaultTheme = mustParseTheme(embeddedTheme)

// DefaultTheme returns the embedded theme
func DefaultTheme() *Theme {
	return defaultTheme
}

func mustParseTheme(data []byte) *Theme {
	theme, err := ParseTheme(data)
	if err != nil {
		panic(fmt.Sprintf("embedded theme is invalid: %v", err))
	}
	return theme
}

// LoadTheme loads a theme from a YAML file. Entries missing from the file
// keep their default style.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	override, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	return defaultTheme.Merge(override), nil
}

// ParseTheme builds a theme from YAML data
func ParseTheme(data []byte) (*Theme, error) {
	var config ThemeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme data: %w", err)
	}

	theme := &Theme{
		styles: make(map[string]Style, len(config.Styles)),
		tokens: make(map[TokenType]Style, len(config.Tokens)),
	}
	for _, name := range sortedKeys(config.Styles) {
		s, err := buildStyle(config.Styles[name])
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		theme.styles[name] = s
	}
	for i, def := range config.Highlight {
		s, err := buildStyle(def)
		if err != nil {
			return nil, fmt.Errorf("highlight %d: %w", i, err)
		}
		theme.highlight = append(theme.highlight, s)
	}
	for _, name := range sortedKeys(config.Tokens) {
		tt, ok := ParseTokenType(name)
		if !ok {
			return nil, fmt.Errorf("unknown token type %q", name)
		}
		s, err := buildStyle(config.Tokens[name])
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", name, err)
		}
		theme.tokens[tt] = s
	}
	return theme, nil
}

func buildStyle(def StyleDef) (Style, error) {
	s := Style{
		Bold:      def.Bold,
		Dim:       def.Dim,
		Italic:    def.Italic,
		Underline: def.Underline,
		Strike:    def.Strike,
		Inverse:   def.Inverse,
	}
	if def.Foreground != "" {
		c, ok := ParseColor(def.Foreground)
		if !ok {
			return Style{}, fmt.Errorf("unknown color %q", def.Foreground)
		}
		s.Foreground = c
	}
	if def.Background != "" {
		c, ok := ParseColor(def.Background)
		if !ok {
			return Style{}, fmt.Errorf("unknown color %q", def.Background)
		}
		s.Background = c
	}
	return s, nil
}

// Merge returns a new theme with entries from other replacing those in t
func (t *Theme) Merge(other *Theme) *Theme {
	out := &Theme{
		styles:    make(map[string]Style, len(t.styles)),
		highlight: t.highlight,
		tokens:    make(map[TokenType]Style, len(t.tokens)),
	}
	for k, v := range t.styles {
		out.styles[k] = v
	}
	for k, v := range t.tokens {
		out.tokens[k] = v
	}
	for k, v := range other.styles {
		out.styles[k] = v
	}
	for k, v := range other.tokens {
		out.tokens[k] = v
	}
	if len(other.highlight) > 0 {
		out.highlight = other.highlight
	}
	return out
}

// Semantic returns the style registered for a semantic name such as "error"
func (t *Theme) Semantic(name string) Style {
	return t.styles[name]
}

// Highlight returns the palette entry for index i, cycling through the palette
func (t *Theme) Highlight(i int) Style {
	if len(t.highlight) == 0 {
		return Style{}
	}
	i %= len(t.highlight)
	if i < 0 {
		i = -i
	}
	return t.highlight[i]
}

// Token returns the style for a token class, tagged with the class itself
func (t *Theme) Token(tt TokenType) Style {
	if tt == TokenNone {
		return Style{}
	}
	s := t.tokens[tt]
	s.Token = tt
	return s
}

func sortedKeys(m map[string]StyleDef) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
