package words

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// List is an immutable, ordered set of accepted words.
type List struct {
	words []string
	set   map[string]struct{}
}

// NewList builds a List from already normalized words. Invalid words are
// dropped and duplicates keep their first position.
func NewList(ws []string) *List {
	l := &List{set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		if !IsValid(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// Len returns the number of accepted words.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the list in encounter order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Contains reports whether w (normalized) is an accepted word.
func (l *List) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// maxSuggestDistance bounds how far a suggestion may be from the guess.
const maxSuggestDistance = 2

// Suggest returns up to n list words closest to w by edit distance,
// nearest first, ties in list order. Words further than two edits are ignored.
func (l *List) Suggest(w string, n int) []string {
	if n <= 0 || w == "" {
		return nil
	}
	type cand struct {
		word string
		dist int
		pos  int
	}
	var cands []cand
	for i, x := range l.words {
		d := levenshtein.ComputeDistance(w, x)
		if d == 0 || d > maxSuggestDistance {
			continue
		}
		cands = append(cands, cand{word: x, dist: d, pos: i})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].pos < cands[j].pos
		}
		return cands[i].dist < cands[j].dist
	})
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}
