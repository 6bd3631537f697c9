// Package config loads brewdump's configuration.
//
// Values are layered with koanf, later sources overriding earlier ones:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user file, $XDG_CONFIG_HOME/brewdump/config.toml, or an explicit path
//  3. BREWDUMP_* environment variables, e.g. BREWDUMP_BREW_COMMAND
package config
