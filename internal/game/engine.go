// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Create rounds with a secret chosen by an injected Picker.
//   - Validate guesses (length, word list, optional repeat check).
//   - Score accepted guesses and track absent letters.
//   - Track state transitions: active → won/lost.
//
// Notes:
//   - A Game is owned by one caller and is not safe for concurrent use.
//   - Rejected guesses never consume an attempt and never change state.

package game

import (
	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// Game holds the state of a single round.
type Game struct {
	ID string

	secret        string
	list          *words.List
	maxAttempts     int
	rejectRepeats   bool
	confirmedAbsent bool

	history []Attempt
	guessed map[string]struct{}
	absent  [26]bool
	state   State
}

// New starts a round over list with a secret chosen by pick.
// Returns ErrNoWords for an empty list and ErrBadSecret when the picked
// word is not in the list.
func New(list *words.List, pick Picker, opts Options) (*Game, error) {
	if list == nil || list.Len() == 0 {
		return nil, ErrNoWords
	}
	secret := words.Normalize(pick.Pick(list.Words()))
	if !list.Contains(secret) {
		return nil, ErrBadSecret
	}
	limit := opts.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	return &Game{
		ID:              uuid.NewString(),
		secret:          secret,
		list:            list,
		maxAttempts:     limit,
		rejectRepeats:   opts.RejectRepeats,
		confirmedAbsent: opts.ConfirmedAbsent,
		guessed:         make(map[string]struct{}),
		state:           Active,
	}, nil
}

// SubmitGuess normalizes raw, validates it and, if accepted, scores it and
// advances the round.
//
// Rejections (returned as *RejectedError, attempt not consumed):
//   - ErrGameOver when the round already ended.
//   - ErrWrongLength when the normalized guess is not words.WordLength letters.
//   - ErrNotInList when the guess is not an accepted word.
//   - ErrAlreadyGuessed when repeats are rejected and the word was tried.
//
// State transitions:
//   - All letters Correct → Won.
//   - Else attempts reach the maximum → Lost.
func (g *Game) SubmitGuess(raw string) ([]Outcome, error) {
	guess := words.Normalize(raw)
	if g.state.Terminal() {
		return nil, reject(ErrGameOver, guess)
	}
	if !words.IsValid(guess) {
		return nil, reject(ErrWrongLength, guess)
	}
	if !g.list.Contains(guess) {
		return nil, reject(ErrNotInList, guess)
	}
	if _, seen := g.guessed[guess]; seen && g.rejectRepeats {
		return nil, reject(ErrAlreadyGuessed, guess)
	}

	marks := Score(g.secret, guess)
	g.history = append(g.history, Attempt{Guess: guess, Outcomes: marks})
	g.guessed[guess] = struct{}{}
	g.mergeAbsent(guess, marks)

	if allCorrect(marks) {
		g.state = Won
	} else if len(g.history) >= g.maxAttempts {
		g.state = Lost
	}
	return append([]Outcome(nil), marks...), nil
}

// mergeAbsent adds every letter that scored Absent in guess. With
// confirmedAbsent, a letter that also scored Correct or Present in the
// same guess is skipped.
func (g *Game) mergeAbsent(guess string, marks []Outcome) {
	var hit [26]bool
	if g.confirmedAbsent {
		for i, m := range marks {
			if m != Absent {
				hit[idx(guess[i])] = true
			}
		}
	}
	for i, m := range marks {
		if j := idx(guess[i]); m == Absent && !hit[j] {
			g.absent[j] = true
		}
	}
}

// IsTerminal reports whether the round has been won or lost.
func (g *Game) IsTerminal() bool { return g.state.Terminal() }

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// Attempts is the number of accepted guesses.
func (g *Game) Attempts() int { return len(g.history) }

// MaxAttempts is the number of guesses allowed this round.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Remaining is the number of attempts left.
func (g *Game) Remaining() int { return g.maxAttempts - len(g.history) }

// Guesses returns accepted guesses in order.
func (g *Game) Guesses() []string {
	out := make([]string, len(g.history))
	for i, a := range g.history {
		out[i] = a.Guess
	}
	return out
}

// History returns accepted guesses with their outcomes.
func (g *Game) History() []Attempt {
	out := make([]Attempt, len(g.history))
	for i, a := range g.history {
		out[i] = Attempt{Guess: a.Guess, Outcomes: append([]Outcome(nil), a.Outcomes...)}
	}
	return out
}

// AbsentLetters returns the letters confirmed absent so far, sorted.
func (g *Game) AbsentLetters() string {
	var b []byte
	for i, ok := range g.absent {
		if ok {
			b = append(b, byte('A'+i))
		}
	}
	return string(b)
}

// Secret reveals the secret once the round is over; "" while active.
func (g *Game) Secret() string {
	if !g.state.Terminal() {
		return ""
	}
	return g.secret
}
