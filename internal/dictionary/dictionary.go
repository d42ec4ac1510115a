// Package dictionary provides the collaborators a game consumes: a source for
// the secret word and a validity check for submitted guesses.
package dictionary

import (
	"context"
	"strings"
	"time"

	"github.com/matthewfesta/Wordle-Clone/internal/daily"
	"github.com/matthewfesta/Wordle-Clone/internal/words"
)

// Dictionary supplies secret words and validates guesses.
type Dictionary interface {
	// WordOfTheDay returns an uppercase secret word.
	WordOfTheDay(ctx context.Context) (string, error)
	// Validate reports whether word is an accepted guess.
	Validate(ctx context.Context, word string) (bool, error)
}

// Local answers from in-process word lists.
type Local struct {
	lists  *words.Lists
	salt   string
	random bool
	now    func() time.Time
}

// LocalOption configures a Local dictionary.
type LocalOption func(*Local)

// WithSalt sets the HMAC salt used to pick the daily word.
func WithSalt(salt string) LocalOption { return func(l *Local) { l.salt = salt } }

// WithRandomWord makes WordOfTheDay pick a random answer each call.
func WithRandomWord(random bool) LocalOption { return func(l *Local) { l.random = random } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) LocalOption { return func(l *Local) { l.now = now } }

// NewLocal builds a Local over lists.
func NewLocal(lists *words.Lists, opts ...LocalOption) *Local {
	l := &Local{lists: lists, salt: "local_dev_salt", now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Local) WordOfTheDay(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.random {
		return strings.ToUpper(l.lists.RandomAnswer()), nil
	}
	answers := l.lists.Answers()
	idx := daily.WordIndex(l.now(), l.salt, len(answers))
	return strings.ToUpper(answers[idx]), nil
}

func (l *Local) Validate(ctx context.Context, word string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return l.lists.IsAllowed(word), nil
}
