package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. WORDLE_GAME_MAX_ATTEMPTS.
const EnvPrefix = "WORDLE"

var defaults = map[string]any{
	"log.level":                 "warn",
	"words.file":                "",
	"game.max_attempts":         6,
	"game.reject_repeats":       true,
	"game.confirmed_absent":     false,
	"game.seed":                 0,
	"game.daily":                false,
	"game.daily_salt":           "local_dev_salt",
	"game.keyboard":             false,
	"game.suggestions":          3,
	"display.color":             "auto",
	"server.port":               5175,
	"server.allow_fixed_answer": false,
	"server.finished_ttl":       30 * time.Minute,
	"server.idle_ttl":           24 * time.Hour,
	"server.prune_every":        time.Minute,
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"words":            "words.file",
	"max-attempts":     "game.max_attempts",
	"reject-repeats":   "game.reject_repeats",
	"confirmed-absent": "game.confirmed_absent",
	"seed":             "game.seed",
	"daily":            "game.daily",
	"keyboard":         "game.keyboard",
	"color":            "display.color",
	"port":             "server.port",
}

// Load builds a Config. configPath may be empty; flags may be nil.
// Only flags the user actually set override file and environment values.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("config validation failed: %s", describe(verrs))
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// describe renders validation errors as "Game.MaxAttempts (lte)" pairs.
func describe(errs validator.ValidationErrors) string {
	parts := make([]string, len(errs))
	for i, fe := range errs {
		ns := fe.Namespace()
		ns = strings.TrimPrefix(ns, "Config.")
		parts[i] = fmt.Sprintf("%s (%s)", ns, fe.Tag())
	}
	return strings.Join(parts, ", ")
}
