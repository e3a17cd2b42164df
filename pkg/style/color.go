package style

import "github.com/muesli/termenv"

// Color is one of the 16 named ANSI colors, or ColorNone
type Color int

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var colorNames = map[Color]string{
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightBlack:   "brightBlack",
	ColorBrightRed:     "brightRed",
	ColorBrightGreen:   "brightGreen",
	ColorBrightYellow:  "brightYellow",
	ColorBrightBlue:    "brightBlue",
	ColorBrightMagenta: "brightMagenta",
	ColorBrightCyan:    "brightCyan",
	ColorBrightWhite:   "brightWhite",
}

var colorsByName = func() map[string]Color {
	m := make(map[string]Color, len(colorNames))
	for c, name := range colorNames {
		m[name] = c
	}
	return m
}()

// CSS values for the html target, in the xterm default palette
var colorCSS = map[Color]string{
	ColorBlack:         "#000000",
	ColorRed:           "#cd0000",
	ColorGreen:         "#00cd00",
	ColorYellow:        "#cdcd00",
	ColorBlue:          "#0000ee",
	ColorMagenta:       "#cd00cd",
	ColorCyan:          "#00cdcd",
	ColorWhite:         "#e5e5e5",
	ColorBrightBlack:   "#7f7f7f",
	ColorBrightRed:     "#ff0000",
	ColorBrightGreen:   "#00ff00",
	ColorBrightYellow:  "#ffff00",
	ColorBrightBlue:    "#5c5cff",
	ColorBrightMagenta: "#ff00ff",
	ColorBrightCyan:    "#00ffff",
	ColorBrightWhite:   "#ffffff",
}

// ParseColor looks up a color by its markup name, e.g. "brightRed"
func ParseColor(name string) (Color, bool) {
	c, ok := colorsByName[name]
	return c, ok
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "none"
}

// ansi returns the termenv color for c; nil for ColorNone.
func (c Color) ansi() termenv.Color {
	if c == ColorNone {
		return nil
	}
	return termenv.ANSIColor(c - ColorBlack)
}

// CSS returns the CSS color value, or "" for ColorNone
func (c Color) CSS() string {
	return colorCSS[c]
}
