package game

import (
	"errors"
	"fmt"
)

// Setup errors. A round cannot start.
var (
	ErrNoWords   = errors.New("game: no words to choose from")
	ErrBadSecret = errors.New("game: secret is not an accepted word")
)

// Rejection reasons. The guess is refused and no attempt is consumed.
var (
	ErrWrongLength    = errors.New("wrong length")
	ErrNotInList      = errors.New("not in word list")
	ErrAlreadyGuessed = errors.New("already guessed")
	ErrGameOver       = errors.New("game finished")
)

// RejectedError carries the reason a guess was refused along with the
// normalized guess, so callers can echo it back.
type RejectedError struct {
	Reason error
	Guess  string
}

func (e *RejectedError) Error() string {
	if e.Guess == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", e.Guess, e.Reason)
}

func (e *RejectedError) Unwrap() error { return e.Reason }

func reject(reason error, guess string) error {
	return &RejectedError{Reason: reason, Guess: guess}
}

// Reason maps a rejection to a stable snake_case code, or "" for other errors.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrWrongLength):
		return "wrong_length"
	case errors.Is(err, ErrNotInList):
		return "not_in_list"
	case errors.Is(err, ErrAlreadyGuessed):
		return "already_guessed"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	}
	return ""
}
