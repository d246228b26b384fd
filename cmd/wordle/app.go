package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/cli/internal/logging"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
	"github.com/robalobadob/wordle/apps/cli/internal/render"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Guess the five-letter word",
		Long: `Guess the secret five-letter word in a limited number of attempts.

After each guess every letter is marked:
  correct  right letter, right spot
  present  in the word, but elsewhere
  absent   not in the word (or already used up)

Settings come from flags, WORDLE_* environment variables, an optional
YAML file (--config) and a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, configPath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("words", "", "Word list file, one word per line (default: embedded list)")
	pf.Int("max-attempts", game.DefaultMaxAttempts, "Guesses allowed per round")
	pf.Bool("reject-repeats", true, "Refuse a word already guessed this round")
	pf.Bool("confirmed-absent", false, "List a letter as absent only if no copy of it scored in the guess")
	pf.Int64("seed", 0, "Seed for secret selection (0 picks from the clock)")

	cmd.Flags().Bool("daily", false, "Play the word of the day")
	cmd.Flags().Bool("keyboard", false, "Show the keyboard after each guess")
	cmd.Flags().String("color", render.ColorAuto, "Color output (auto, always, never)")

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func serveCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve single-player games over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, *configPath)
		},
	}
	cmd.Flags().Int("port", 5175, "Port to listen on")
	return cmd
}

// setup loads config, logging and the word list shared by both modes.
// Any error here is setup-fatal.
func setup(cmd *cobra.Command, configPath string) (*config.Config, zerolog.Logger, *words.List, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	logger, err := logging.Setup(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	list, err := words.Load(cfg.Words.File)
	if err != nil {
		return nil, logger, nil, fmt.Errorf("failed to load word list: %w", err)
	}
	if list.Len() == 0 {
		return nil, logger, nil, words.ErrEmptyList
	}
	logger.Debug().Int("words", list.Len()).Str("file", cfg.Words.File).Msg("word list loaded")
	return cfg, logger, list, nil
}

func runPlay(cmd *cobra.Command, configPath string) error {
	cfg, logger, list, err := setup(cmd, configPath)
	if err != nil {
		return err
	}

	var pick game.Picker = game.NewRandomPicker(cfg.Game.Seed)
	title := "Wordle"
	if cfg.Game.Daily {
		now := time.Now()
		pick = game.DailyPicker{Salt: cfg.Game.DailySalt, Now: func() time.Time { return now }}
		title = "Wordle " + strconv.Itoa(daily.Number(now))
	}

	g, err := game.New(list, pick, game.Options{
		MaxAttempts:     cfg.Game.MaxAttempts,
		RejectRepeats:   cfg.Game.RejectRepeats,
		ConfirmedAbsent: cfg.Game.ConfirmedAbsent,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	logger.Debug().Str("gameId", g.ID).Bool("daily", cfg.Game.Daily).Msg("game started")

	out, r := output(cfg.Display.Color, cmd.OutOrStdout())
	s := &play.Session{
		Game:        g,
		List:        list,
		Renderer:    r,
		In:          cmd.InOrStdin(),
		Out:         out,
		Log:         logger,
		Title:       title,
		Suggestions: cfg.Game.Suggestions,
		Keyboard:    cfg.Game.Keyboard,
	}
	if _, err := s.Run(cmd.Context()); err != nil {
		if errors.Is(err, play.ErrInputClosed) {
			logger.Info().Str("gameId", g.ID).Int("attempts", g.Attempts()).Msg("input closed, quitting")
			return nil
		}
		return err
	}
	return nil
}

// output picks the writer and renderer for w. Only real files can be
// probed for a terminal; other writers get color only when forced.
func output(mode string, w io.Writer) (io.Writer, render.Renderer) {
	if f, ok := w.(*os.File); ok {
		return render.Output(mode, f)
	}
	return w, render.Renderer{Color: mode == render.ColorAlways}
}

func runServe(cmd *cobra.Command, configPath string) error {
	cfg, logger, list, err := setup(cmd, configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(store.NewMemoryStore(), list, httpserver.Options{
		Game: game.Options{
			MaxAttempts:     cfg.Game.MaxAttempts,
			RejectRepeats:   cfg.Game.RejectRepeats,
			ConfirmedAbsent: cfg.Game.ConfirmedAbsent,
		},
		Seed:             cfg.Game.Seed,
		DailySalt:        cfg.Game.DailySalt,
		AllowFixedAnswer: cfg.Server.AllowFixedAnswer,
		FinishedTTL:      cfg.Server.FinishedTTL,
		IdleTTL:          cfg.Server.IdleTTL,
		PruneEvery:       cfg.Server.PruneEvery,
	}, logger)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	logger.Info().Str("addr", addr).Int("words", list.Len()).Msg("starting wordle server")
	return srv.Run(ctx, addr)
}
