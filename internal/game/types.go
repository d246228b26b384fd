// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Outcome: per-letter result of a guess (correct/present/absent).
//   - State: lifecycle of a single round (active → won | lost).
//   - Attempt: one accepted guess with its outcomes.
//   - Options: per-round rules.

package game

// Outcome represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret at this position.
//   - "present": letter is in the secret at another, unmatched position.
//   - "absent":  letter is not in the secret, or all its occurrences are already matched.
type Outcome string

const (
	Correct Outcome = "correct"
	Present Outcome = "present"
	Absent  Outcome = "absent"
)

// State is the lifecycle of a round.
type State string

const (
	Active State = "active"
	Won    State = "won"
	Lost   State = "lost"
)

// Terminal reports whether no more guesses are accepted.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Attempt is one accepted guess.
type Attempt struct {
	Guess    string    `json:"guess"`
	Outcomes []Outcome `json:"outcomes"`
}

// DefaultMaxAttempts is the classic six rows.
const DefaultMaxAttempts = 6

// Options are the rules for one round.
type Options struct {
	MaxAttempts   int  // guesses allowed; <= 0 means DefaultMaxAttempts
	RejectRepeats bool // reject a guess already made this round

	// ConfirmedAbsent keeps a letter out of the absent set when another
	// occurrence of it in the same guess scored Correct or Present.
	// By default every Absent-outcome letter is merged.
	ConfirmedAbsent bool
}
