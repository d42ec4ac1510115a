package game

// Score implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) secret letters.
//
// Pass 2, left to right:
//   - For each non-correct guess letter: if a copy of that letter remains,
//     mark Present and consume it; otherwise mark Absent.
//
// An exact match always consumes its own copy before an earlier or later
// duplicate in the guess can claim Present.
//
// guess and secret must have the same length; on mismatch every position of
// secret is reported Absent.
func Score(guess, secret string) []Classification {
	g, s := []rune(guess), []rune(secret)
	out := make([]Classification, len(s))
	for i := range out {
		out[i] = Absent
	}
	if len(g) != len(s) {
		return out
	}

	remaining := make(map[rune]int, len(s))
	for i := range s {
		if g[i] == s[i] {
			out[i] = Correct
		} else {
			remaining[s[i]]++
		}
	}

	for i := range g {
		if out[i] == Correct {
			continue
		}
		if remaining[g[i]] > 0 {
			out[i] = Present
			remaining[g[i]]--
		}
	}
	return out
}

// AllCorrect returns true if every classification is Correct.
func AllCorrect(cs []Classification) bool {
	if len(cs) == 0 {
		return false
	}
	for _, c := range cs {
		if c != Correct {
			return false
		}
	}
	return true
}
