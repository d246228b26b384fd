package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies the values used when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "", cfg.Words.File)
	assert.Equal(t, 6, cfg.Game.MaxAttempts)
	assert.True(t, cfg.Game.RejectRepeats)
	assert.False(t, cfg.Game.ConfirmedAbsent)
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.False(t, cfg.Game.Daily)
	assert.Equal(t, 3, cfg.Game.Suggestions)
	assert.Equal(t, "auto", cfg.Display.Color)
	assert.Equal(t, 5175, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Server.FinishedTTL)
	assert.Equal(t, 24*time.Hour, cfg.Server.IdleTTL)
	assert.Equal(t, time.Minute, cfg.Server.PruneEvery)
}

// TestLoadFromEnv verifies that WORDLE_* variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WORDLE_GAME_MAX_ATTEMPTS", "8")
	t.Setenv("WORDLE_GAME_REJECT_REPEATS", "false")
	t.Setenv("WORDLE_GAME_SEED", "99")
	t.Setenv("WORDLE_WORDS_FILE", "/tmp/words.txt")
	t.Setenv("WORDLE_LOG_LEVEL", "debug")
	t.Setenv("WORDLE_SERVER_FINISHED_TTL", "5m")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Game.MaxAttempts)
	assert.False(t, cfg.Game.RejectRepeats)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "/tmp/words.txt", cfg.Words.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5*time.Minute, cfg.Server.FinishedTTL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
game:
  max_attempts: 4
  keyboard: true
  confirmed_absent: true
display:
  color: never
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.MaxAttempts)
	assert.True(t, cfg.Game.Keyboard)
	assert.True(t, cfg.Game.ConfirmedAbsent)
	assert.Equal(t, "never", cfg.Display.Color)
	assert.Equal(t, "warn", cfg.Log.Level, "unset keys keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

// TestFlagsOverrideEnv verifies precedence and that unset flags do not clobber env.
func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WORDLE_GAME_MAX_ATTEMPTS", "8")
	t.Setenv("WORDLE_DISPLAY_COLOR", "always")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("max-attempts", 6, "")
	fs.String("color", "auto", "")
	require.NoError(t, fs.Parse([]string{"--max-attempts=3"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Game.MaxAttempts)
	assert.Equal(t, "always", cfg.Display.Color)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
		field   string
	}{
		{name: "too many attempts", envVars: map[string]string{"WORDLE_GAME_MAX_ATTEMPTS": "21"}, field: "Game.MaxAttempts"},
		{name: "zero attempts", envVars: map[string]string{"WORDLE_GAME_MAX_ATTEMPTS": "0"}, field: "Game.MaxAttempts"},
		{name: "bad color", envVars: map[string]string{"WORDLE_DISPLAY_COLOR": "rainbow"}, field: "Display.Color"},
		{name: "bad level", envVars: map[string]string{"WORDLE_LOG_LEVEL": "loud"}, field: "Log.Level"},
		{name: "bad port", envVars: map[string]string{"WORDLE_SERVER_PORT": "70000"}, field: "Server.Port"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestDailyRequiresSalt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  daily: true\n  daily_salt: \"\"\n"), 0o644))

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Game.DailySalt")
}
