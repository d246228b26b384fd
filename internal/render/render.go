// internal/render/render.go
//
// Text rendering for the terminal game.
// Responsibilities:
//   - Draw a scored guess as a row of tiles (ANSI colored or bracketed plain text).
//   - Draw the absent-letter line and a keyboard summary.
//   - Build the emoji share grid shown at the end of a round.
//
// Plain mode legend (no color):
//   [A] correct   (A) present    A  absent
//
// Color is decided once per process from the display.color setting; see Output.

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// ANSI SGR sequences for tile backgrounds.
const (
	ansiReset   = "\x1b[0m"
	ansiCorrect = "\x1b[1;30;42m"
	ansiPresent = "\x1b[1;30;43m"
	ansiAbsent  = "\x1b[1;37;100m"
)

// Color modes accepted by display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Renderer formats game output. The zero value renders plain text.
type Renderer struct {
	Color bool
}

// Output resolves mode against f and returns the writer to print to and a
// matching Renderer. Non-color output strips any escape sequences.
func Output(mode string, f *os.File) (io.Writer, Renderer) {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorAuto, "":
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if color {
		return colorable.NewColorable(f), Renderer{Color: true}
	}
	return colorable.NewNonColorable(f), Renderer{}
}

// Tile renders one letter with its outcome.
func (r Renderer) Tile(letter byte, o game.Outcome) string {
	if r.Color {
		return sgr(o) + " " + string(letter) + " " + ansiReset
	}
	switch o {
	case game.Correct:
		return "[" + string(letter) + "]"
	case game.Present:
		return "(" + string(letter) + ")"
	}
	return " " + string(letter) + " "
}

func sgr(o game.Outcome) string {
	switch o {
	case game.Correct:
		return ansiCorrect
	case game.Present:
		return ansiPresent
	}
	return ansiAbsent
}

// Row renders a scored guess.
func (r Renderer) Row(guess string, outcomes []game.Outcome) string {
	tiles := make([]string, len(outcomes))
	for i, o := range outcomes {
		tiles[i] = r.Tile(guess[i], o)
	}
	return strings.Join(tiles, " ")
}

// Absent renders the confirmed-absent letters, or "" when there are none.
func (r Renderer) Absent(letters string) string {
	if letters == "" {
		return ""
	}
	return "Absent: " + strings.Join(strings.Split(letters, ""), " ")
}

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Keyboard renders a QWERTY layout where each letter shows the best
// outcome it has earned so far. Untried letters are printed bare.
func (r Renderer) Keyboard(history []game.Attempt) string {
	best := bestOutcomes(history)
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			c := row[j]
			o, seen := best[c]
			switch {
			case !seen:
				keys[j] = " " + string(c) + " "
			case o == game.Absent && !r.Color:
				keys[j] = " - "
			default:
				keys[j] = r.Tile(c, o)
			}
		}
		lines[i] = strings.Repeat("  ", i) + strings.Join(keys, "")
	}
	return strings.Join(lines, "\n")
}

func bestOutcomes(history []game.Attempt) map[byte]game.Outcome {
	rank := map[game.Outcome]int{game.Absent: 1, game.Present: 2, game.Correct: 3}
	best := make(map[byte]game.Outcome)
	for _, a := range history {
		for i, o := range a.Outcomes {
			c := a.Guess[i]
			if rank[o] > rank[best[c]] {
				best[c] = o
			}
		}
	}
	return best
}

// Share renders the spoiler-free result grid, e.g. "Wordle 3/6".
// title is prefixed verbatim; attempts shows as X on a loss.
func Share(title string, history []game.Attempt, won bool, maxAttempts int) string {
	score := "X"
	if won {
		score = fmt.Sprint(len(history))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s/%d\n", title, score, maxAttempts)
	for _, a := range history {
		for _, o := range a.Outcomes {
			switch o {
			case game.Correct:
				b.WriteString("🟩")
			case game.Present:
				b.WriteString("🟨")
			default:
				b.WriteString("⬛")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
