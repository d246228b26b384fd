package game

import (
	"math/rand"
	"time"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
)

// Picker chooses the secret for a round from the accepted words.
// Pick is only called with a non-empty slice.
type Picker interface {
	Pick(words []string) string
}

// RandomPicker draws uniformly from its own source.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns a picker seeded with seed, or from the clock when seed is 0.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Pick(words []string) string {
	return words[p.rng.Intn(len(words))]
}

// DailyPicker gives every player the same word on a UTC date.
type DailyPicker struct {
	Salt string
	Now  func() time.Time // nil means time.Now
}

func (p DailyPicker) Pick(words []string) string {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return words[daily.WordIndex(now(), p.Salt, len(words))]
}

// Fixed always picks itself. Used by tests and the HTTP answer override.
type Fixed string

func (f Fixed) Pick([]string) string { return string(f) }
