// Package daily derives the word of the day: every player sees the same
// secret on a given UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Number counts days since the first daily puzzle, 1-based, for share text.
func Number(t time.Time) int {
	d := t.UTC().Truncate(24 * time.Hour).Sub(epoch)
	return int(d/(24*time.Hour)) + 1
}

var epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)
