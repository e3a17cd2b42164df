package config

import (
	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/grid"
	"github.com/arthur-debert/markup/pkg/markup"
	"github.com/arthur-debert/markup/pkg/style"
)

// FormatAuto defers the output format to terminal detection
const FormatAuto = "auto"

// Config holds the resolved settings
type Config struct {
	Format         string `koanf:"format"`
	Columns        int    `koanf:"columns"`
	StripPositions bool   `koanf:"strip_positions"`
	MaxDepth       int    `koanf:"max_depth"`
	Theme          string `koanf:"theme"`
}

// Validate checks value ranges and the format name
func (c *Config) Validate() error {
	if c.Format != FormatAuto {
		if _, err := grid.ParseFormat(c.Format); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid format %q", c.Format).
				WithDetail("key", "format")
		}
	}
	if c.Columns < 0 {
		return errors.Newf(errors.ErrConfigValid, "columns must not be negative, got %d", c.Columns).
			WithDetail("key", "columns")
	}
	if c.MaxDepth < 0 {
		return errors.Newf(errors.ErrConfigValid, "max_depth must not be negative, got %d", c.MaxDepth).
			WithDetail("key", "max_depth")
	}
	return nil
}

// LoadTheme returns the configured theme merged over the built-in one
func (c *Config) LoadTheme() (*style.Theme, error) {
	if c.Theme == "" {
		return style.DefaultTheme(), nil
	}
	theme, err := style.LoadTheme(c.Theme)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load theme").
			WithDetail("path", c.Theme)
	}
	return theme, nil
}

// RenderOptions converts the config to renderer options. format must already
// be resolved from "auto" by the caller.
func (c *Config) RenderOptions(format grid.Format, columns int) (grid.Options, error) {
	theme, err := c.LoadTheme()
	if err != nil {
		return grid.Options{}, err
	}
	maxDepth := c.MaxDepth
	if maxDepth == 0 {
		maxDepth = markup.DefaultMaxDepth
	}
	return grid.Options{
		Format:         format,
		Columns:        columns,
		StripPositions: c.StripPositions,
		MaxDepth:       maxDepth,
		Theme:          theme,
	}, nil
}
