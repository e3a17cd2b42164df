package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/markup/pkg/errors"
	"github.com/arthur-debert/markup/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment overrides, e.g. MARKUP_COLUMNS
const EnvPrefix = "MARKUP_"

// userConfigName is the user config location relative to the XDG config dirs
const userConfigName = "markup/config.toml"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// LoadOptions selects the optional layers of Load
type LoadOptions struct {
	// File is an explicit config file; it must exist when set.
	File string
	// Overrides are applied last, typically from command line flags that
	// were set explicitly. Keys are config keys such as "columns".
	Overrides map[string]interface{}
}

// Load builds the configuration from every layer
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, when present
	if path, err := xdg.SearchConfigFile(userConfigName); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Explicit config file
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail("path", opts.File)
		}
		if err := k.Load(file.Provider(opts.File), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.File).
				WithDetail("path", opts.File)
		}
		logger.Debug().Str("path", opts.File).Msg("Loaded config file")
	}

	// 4. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Trace().
		Str("format", cfg.Format).
		Int("columns", cfg.Columns).
		Bool("strip_positions", cfg.StripPositions).
		Int("max_depth", cfg.MaxDepth).
		Str("theme", cfg.Theme).
		Msg("Configuration loaded")
	return &cfg, nil
}

// Defaults returns the embedded defaults file content
func Defaults() string {
	return string(defaultConfig)
}
