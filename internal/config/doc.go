// Package config manages user-level settings stored at
// $XDG_CONFIG_HOME/windows-link-reader/config.yaml. It layers defaults, the
// config file and OPEN_LNK_* environment variables through Viper, exposes
// the result as typed Settings, and validates the file against an embedded
// JSON Schema.
package config
