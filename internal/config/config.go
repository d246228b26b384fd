package config

import "time"

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Words   WordsConfig   `mapstructure:"words"`
	Game    GameConfig    `mapstructure:"game" validate:"required"`
	Display DisplayConfig `mapstructure:"display" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
}

// LogConfig controls the zerolog level.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// WordsConfig points at the word list. An empty File uses the embedded list.
type WordsConfig struct {
	File string `mapstructure:"file"`
}

// GameConfig holds the rules of a round.
type GameConfig struct {
	MaxAttempts     int    `mapstructure:"max_attempts" validate:"required,gte=1,lte=20"`
	RejectRepeats   bool   `mapstructure:"reject_repeats"`
	ConfirmedAbsent bool   `mapstructure:"confirmed_absent"`
	Seed            int64  `mapstructure:"seed"`
	Daily           bool   `mapstructure:"daily"`
	DailySalt       string `mapstructure:"daily_salt" validate:"required_if=Daily true"`
	Keyboard        bool   `mapstructure:"keyboard"`
	Suggestions     int    `mapstructure:"suggestions" validate:"gte=0,lte=10"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	Color string `mapstructure:"color" validate:"required,oneof=auto always never"`
}

// ServerConfig is used by `wordle serve` only.
type ServerConfig struct {
	Port             int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	AllowFixedAnswer bool          `mapstructure:"allow_fixed_answer"`
	FinishedTTL      time.Duration `mapstructure:"finished_ttl" validate:"gte=0"`
	IdleTTL          time.Duration `mapstructure:"idle_ttl" validate:"gte=0"`
	PruneEvery       time.Duration `mapstructure:"prune_every" validate:"gte=0"`
}
