// internal/play/session.go
//
// Console turn loop for one round.
// Responsibilities:
//   - Prompt for and read one line of input per turn.
//   - Submit it to the game and print either the scored row or the reason
//     the guess was rejected.
//   - Print the final result and share grid when the round ends.
//
// Rejected guesses are handled entirely here; they never end the loop.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/render"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// ErrInputClosed is returned when input ends before the round does.
var ErrInputClosed = errors.New("play: input closed before the game ended")

// Session wires a game to console input and output.
type Session struct {
	Game     *game.Game
	List     *words.List // for suggestions; nil disables them
	Renderer render.Renderer
	In       io.Reader
	Out      io.Writer
	Log      zerolog.Logger

	Title       string // share grid title, "Wordle" when empty
	Suggestions int    // near matches offered for unknown words
	Keyboard    bool   // print the keyboard after each accepted guess
}

// Run plays until the game is won or lost, input ends, or ctx is done.
func (s *Session) Run(ctx context.Context) (game.State, error) {
	g := s.Game
	sc := bufio.NewScanner(s.In)

	s.printf("Guess the %d-letter word. You have %d attempts.\n", words.WordLength, g.MaxAttempts())
	for !g.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return g.State(), err
		}
		s.printf("[%d/%d] > ", g.Attempts()+1, g.MaxAttempts())
		if !sc.Scan() {
			s.printf("\n")
			if err := sc.Err(); err != nil {
				return g.State(), fmt.Errorf("read guess: %w", err)
			}
			return g.State(), ErrInputClosed
		}

		marks, err := g.SubmitGuess(sc.Text())
		if err != nil {
			var rej *game.RejectedError
			if !errors.As(err, &rej) {
				return g.State(), err
			}
			s.Log.Debug().Str("gameId", g.ID).Str("guess", rej.Guess).Str("reason", game.Reason(err)).Msg("guess rejected")
			s.printf("%s\n", s.rejection(rej))
			continue
		}

		guess := g.Guesses()[g.Attempts()-1]
		s.Log.Debug().Str("gameId", g.ID).Int("attempt", g.Attempts()).Str("guess", guess).Msg("guess accepted")
		s.printf("%s\n", s.Renderer.Row(guess, marks))
		if line := s.Renderer.Absent(g.AbsentLetters()); line != "" {
			s.printf("%s\n", line)
		}
		if s.Keyboard && !g.IsTerminal() {
			s.printf("%s\n", s.Renderer.Keyboard(g.History()))
		}
	}

	s.finish()
	s.Log.Info().Str("gameId", g.ID).Str("state", string(g.State())).Int("attempts", g.Attempts()).Msg("game over")
	return g.State(), nil
}

func (s *Session) rejection(rej *game.RejectedError) string {
	switch {
	case errors.Is(rej, game.ErrWrongLength):
		return fmt.Sprintf("Guesses must be %d letters.", words.WordLength)
	case errors.Is(rej, game.ErrNotInList):
		msg := fmt.Sprintf("%s is not in the word list.", rej.Guess)
		if s.List != nil && s.Suggestions > 0 {
			if near := s.List.Suggest(rej.Guess, s.Suggestions); len(near) > 0 {
				msg += " Did you mean " + strings.Join(near, ", ") + "?"
			}
		}
		return msg
	case errors.Is(rej, game.ErrAlreadyGuessed):
		return fmt.Sprintf("You already tried %s.", rej.Guess)
	}
	return rej.Error()
}

func (s *Session) finish() {
	g := s.Game
	won := g.State() == game.Won
	if won {
		s.printf("You got it in %d/%d!\n", g.Attempts(), g.MaxAttempts())
	} else {
		s.printf("Out of guesses. The word was %s.\n", g.Secret())
	}
	title := s.Title
	if title == "" {
		title = "Wordle"
	}
	s.printf("\n%s", render.Share(title, g.History(), won, g.MaxAttempts()))
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.Out, format, args...)
}
