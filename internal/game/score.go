package game

// Score implements the standard two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the remaining (unmatched) secret letters.
//
// Pass 2:
//   - For each non-correct guess letter: if an unmatched occurrence remains,
//     mark Present and consume it; otherwise mark Absent.
//
// A guess letter therefore scores Correct/Present at most as many times as
// it occurs in the secret. Both inputs must be uppercase A–Z of equal length.
func Score(secret, guess string) []Outcome {
	n := len(guess)
	res := make([]Outcome, n)

	// Unmatched secret letters (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = Correct
		} else {
			counts[idx(secret[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		if j := idx(guess[i]); counts[j] > 0 {
			res[i] = Present
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(c byte) int { return int(c - 'A') }

func allCorrect(m []Outcome) bool {
	for _, x := range m {
		if x != Correct {
			return false
		}
	}
	return true
}
