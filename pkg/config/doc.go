// Package config loads markup's settings. Layers are applied in order, later
// ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/markup/config.toml
//  3. an explicit file passed with --config
//  4. MARKUP_* environment variables (MARKUP_COLUMNS=100)
//  5. command line flags
package config
