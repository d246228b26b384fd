// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Normalize raw lines (trim, uppercase, drop anything that is not A–Z).
//   - Validate normalized words against the fixed word length.
//   - Build the accepted word list from a file, a reader, or the embedded default.
//   - Answer membership queries and suggest near matches for rejected guesses.
//
// Loading behavior:
//  1. If a path is configured (WORDLE_WORDS_FILE / --words), read that file once.
//  2. Otherwise fall back to the list embedded by the assets package.
//
// Constraints:
//   • Words are exactly WordLength uppercase ASCII letters.
//   • The list keeps encounter order and drops duplicates.
//   • A list with no valid words is a setup error (ErrEmptyList).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/cli/assets"
)

// WordLength is the number of letters in every secret and guess.
const WordLength = 5

// ErrEmptyList is returned when a source yields no valid words.
var ErrEmptyList = errors.New("words: word list is empty")

// Normalize trims raw, uppercases it and keeps only ASCII letters.
// Interior characters are filtered one by one, so "HEL  LO" becomes "HELLO".
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsValid reports whether an already normalized word has the fixed length.
func IsValid(word string) bool {
	return len(word) == WordLength
}

// Parse splits raw text into lines and returns the normalized lines that
// pass IsValid, in encounter order. Blank and wrong-length lines are skipped.
func Parse(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if w := Normalize(line); IsValid(w) {
			out = append(out, w)
		}
	}
	return out
}

// Read is Parse over a stream.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := Normalize(sc.Text()); IsValid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// LoadFile reads one word per line from path and builds a List.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	ws, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	l := NewList(ws)
	if l.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyList)
	}
	return l, nil
}

// Default returns the word list embedded in the binary.
func Default() *List {
	return NewList(Parse(assets.WordList()))
}

// Load picks the file at path when set, else the embedded default.
func Load(path string) (*List, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
