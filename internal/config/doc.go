// Package config loads game settings from defaults, an optional YAML file,
// WORDLE_* environment variables and command-line flags, in increasing
// order of precedence, and validates the result.
package config
