// Package main provides the wordle binary entry point: a terminal word
// guessing game, plus an optional HTTP mode serving the same rules.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	Version = "0.1.0"
	appName = "wordle"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordle exited")
	}
}
