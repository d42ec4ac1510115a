// internal/words/words.go
//
// Word list management for the words API and offline play.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply RandomAnswer, IsAllowed, IsAnswer and Stats.
//
// Word Lists:
//   - "answers": canonical secrets (exactly Length lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (Load):
//   1. AnswersFile and AllowedFile both set: answers from the first, extra guesses from the second.
//   2. Only one of them set: that file is used for both answers and guesses.
//   3. Neither set: embedded assets/answers.txt and assets/allowed.txt.
//
// Constraints:
//   • Words must be Length alphabetic letters (a–z); other lines are dropped.
//   • Lists are normalized to lowercase.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/matthewfesta/Wordle-Clone/assets"
)

// Length is the fixed word width.
const Length = 5

// ErrEmptyAnswers is returned when no usable answer words were loaded.
var ErrEmptyAnswers = errors.New("words: answers list is empty")

// Config selects where lists come from. Empty paths fall back to embedded lists.
type Config struct {
	AnswersFile string
	AllowedFile string
}

// Lists holds loaded word lists. Read-only after Load, safe for concurrent use.
type Lists struct {
	answers    []string            // canonical answers, in file order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load reads word lists according to cfg.
func Load(cfg Config) (*Lists, error) {
	var ansList, allowList []string
	var err error

	switch {
	case cfg.AnswersFile != "" && cfg.AllowedFile != "":
		if ansList, err = readWordFile(cfg.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(cfg.AllowedFile); err != nil {
			return nil, err
		}

	case cfg.AllowedFile != "" || cfg.AnswersFile != "":
		path := cfg.AllowedFile
		if path == "" {
			path = cfg.AnswersFile
		}
		if allowList, err = readWordFile(path); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		raw, err := assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		ansList = filterWords(raw)
		raw, err = assets.AllowedList()
		if err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
		allowList = filterWords(raw)
	}

	return FromLists(ansList, allowList)
}

// FromLists builds Lists from in-memory slices. Words are normalized and
// filtered like file input.
func FromLists(answers, allowed []string) (*Lists, error) {
	ans := filterWords(answers)
	if len(ans) == 0 {
		return nil, ErrEmptyAnswers
	}
	l := &Lists{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	// Ensure all answers are also marked as allowed
	for _, w := range filterWords(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	return l, nil
}

// readWordFile loads one word per line from a file and keeps only valid words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return filterWords(out), nil
}

// filterWords lowercases, trims and keeps valid Length-letter words.
func filterWords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == Length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns a copy of the answer list.
func (l *Lists) Answers() []string {
	return append([]string(nil), l.answers...)
}

// AnswerAt returns the answer at i modulo the list length.
func (l *Lists) AnswerAt(i int) string {
	n := len(l.answers)
	return l.answers[((i%n)+n)%n]
}

// RandomAnswer returns a cryptographically random answer.
func (l *Lists) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses), any case.
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// IsAnswer reports whether w is an answer word, any case.
func (l *Lists) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}

// Allowed returns the sorted allowed list.
func (l *Lists) Allowed() []string {
	out := make([]string, 0, len(l.allowedSet))
	for w := range l.allowedSet {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
