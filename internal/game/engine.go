// internal/game/engine.go
//
// Core game engine for a single word-guessing session.
// Responsibilities:
//   - Hold the secret word, round counter, in-progress guess and status.
//   - Edit the guess buffer (append with overwrite-last policy, remove).
//   - Gate edits behind a busy flag while a guess is being validated.
//   - Score committed guesses and drive in_progress → won/lost.
//
// Notes:
//   - Validation is an external call; BeginCommit/ResolveCommit bracket it so
//     callers with their own event loop (the TUI) can run it asynchronously.
//     Commit composes both for blocking callers.
//   - Listener callbacks fire after the lock is released.

package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
)

const (
	defaultRows = 6
	defaultCols = 5
)

var (
	// ErrCommitFailed wraps any error returned while validating a guess.
	ErrCommitFailed = errors.New("commit failed, retry")
	// ErrBadSecret is returned by New when the secret does not fit the board.
	ErrBadSecret = errors.New("secret must be alphabetic and match the board width")
)

// Validator answers whether a word is in the dictionary.
type Validator interface {
	Validate(ctx context.Context, word string) (bool, error)
}

// ValidatorFunc adapts a func to a Validator.
type ValidatorFunc func(ctx context.Context, word string) (bool, error)

func (f ValidatorFunc) Validate(ctx context.Context, word string) (bool, error) {
	return f(ctx, word)
}

// Game holds the state of a single session.
type Game struct {
	mu sync.Mutex

	id       string
	secret   string // uppercase, len == cols
	rows     int    // rounds allowed (R)
	cols     int    // letters per word (L)
	round    int
	guess    []rune
	history  []Row
	status   Status
	busy     bool
	classify Classifier
	listener Listener
}

// Option configures a Game at construction.
type Option func(*Game)

// WithBoard overrides the default 6x5 board.
func WithBoard(rows, cols int) Option {
	return func(g *Game) {
		if rows > 0 {
			g.rows = rows
		}
		if cols > 0 {
			g.cols = cols
		}
	}
}

// WithClassifier replaces Score.
func WithClassifier(c Classifier) Option {
	return func(g *Game) {
		if c != nil {
			g.classify = c
		}
	}
}

// WithListener attaches a listener for rendering signals.
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listener = l
		}
	}
}

// WithID sets a fixed identifier (tests, resumed sessions).
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

// New constructs a game for secret. The secret is uppercased and must be
// exactly as wide as the board.
func New(secret string, opts ...Option) (*Game, error) {
	g := &Game{
		id:       uuid.NewString(),
		rows:     defaultRows,
		cols:     defaultCols,
		status:   InProgress,
		classify: Score,
		listener: NopListener{},
	}
	for _, opt := range opts {
		opt(g)
	}
	s := strings.ToUpper(strings.TrimSpace(secret))
	if len([]rune(s)) != g.cols || !isLetters(s) {
		return nil, fmt.Errorf("%w: %q", ErrBadSecret, secret)
	}
	g.secret = s
	g.guess = make([]rune, 0, g.cols)
	return g, nil
}

// ID returns the session identifier.
func (g *Game) ID() string { return g.id }

// AppendLetter adds ch to the guess. When the guess is already full the last
// letter is overwritten. Non-letters, terminal games and busy games are ignored.
func (g *Game) AppendLetter(ch rune) {
	if !isLetter(ch) {
		return
	}
	ch = unicode.ToUpper(ch)

	g.mu.Lock()
	if g.status.Terminal() || g.busy {
		g.mu.Unlock()
		return
	}
	if len(g.guess) < g.cols {
		g.guess = append(g.guess, ch)
	} else {
		g.guess[len(g.guess)-1] = ch
	}
	pos, l := len(g.guess)-1, g.listener
	g.mu.Unlock()

	l.OnLetterChanged(pos, ch)
}

// RemoveLetter drops the last letter of the guess, if any.
func (g *Game) RemoveLetter() {
	g.mu.Lock()
	if g.status.Terminal() || g.busy || len(g.guess) == 0 {
		g.mu.Unlock()
		return
	}
	g.guess = g.guess[:len(g.guess)-1]
	pos, l := len(g.guess), g.listener
	g.mu.Unlock()

	l.OnLetterChanged(pos, 0)
}

// BeginCommit marks the game busy and hands out the full guess for
// validation. It reports false, and changes nothing, when the game is over,
// a commit is already pending, or the guess is not full length.
func (g *Game) BeginCommit() (Pending, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status.Terminal() || g.busy || len(g.guess) != g.cols {
		return Pending{}, false
	}
	g.busy = true
	guess := string(g.guess)
	return Pending{Guess: guess, Winning: guess == g.secret}, true
}

// ResolveCommit completes a commit started by BeginCommit with the
// dictionary's verdict. valid is ignored when err is non-nil.
//
// State transitions:
//   - guess == secret → scored, won (validity is irrelevant).
//   - err != nil     → busy cleared, nothing else changes; returns ErrCommitFailed.
//   - !valid         → busy cleared, OnInvalidGuess; round and guess unchanged.
//   - otherwise      → scored, round advanced, guess cleared; lost when the
//     last round is used up.
func (g *Game) ResolveCommit(valid bool, err error) (Outcome, error) {
	g.mu.Lock()
	if !g.busy {
		out := Outcome{Status: g.status}
		g.mu.Unlock()
		return out, nil
	}
	g.busy = false
	l := g.listener
	guess := string(g.guess)
	winning := guess == g.secret

	if !winning && err != nil {
		out := Outcome{Status: g.status}
		g.mu.Unlock()
		l.OnCommitFailed(err)
		return out, fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	if !winning && !valid {
		out := Outcome{Invalid: true, Status: g.status}
		g.mu.Unlock()
		l.OnInvalidGuess()
		return out, nil
	}

	classes := g.classify(guess, g.secret)
	g.history = append(g.history, Row{Guess: guess, Classes: classes})
	g.round++
	g.guess = g.guess[:0]
	if winning {
		g.status = Won
	} else if g.round >= g.rows {
		g.status = Lost
	}
	out := Outcome{Committed: true, Classes: append([]Classification(nil), classes...), Status: g.status}
	secret := g.secret
	g.mu.Unlock()

	for i, c := range classes {
		l.OnClassified(i, c)
	}
	switch out.Status {
	case Won:
		l.OnWin()
	case Lost:
		l.OnLose(secret)
	}
	return out, nil
}

// Commit validates and applies the current guess, blocking on v.
// A winning guess skips validation. When the guess is not committable
// (wrong length, already busy, game over) Commit is a no-op.
func (g *Game) Commit(ctx context.Context, v Validator) (Outcome, error) {
	p, ok := g.BeginCommit()
	if !ok {
		return Outcome{Status: g.Status()}, nil
	}
	valid, err := true, error(nil)
	if !p.Winning {
		valid, err = v.Validate(ctx, p.Guess)
	}
	return g.ResolveCommit(valid, err)
}

// Status reports the current lifecycle state.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Round reports the number of scored rows so far.
func (g *Game) Round() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

// Guess returns the in-progress guess.
func (g *Game) Guess() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return string(g.guess)
}

// Busy reports whether a commit is awaiting validation.
func (g *Game) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// Snapshot is a consistent copy of a game's visible state.
type Snapshot struct {
	ID      string `json:"id"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Round   int    `json:"round"`
	Guess   string `json:"guess"`
	Status  Status `json:"status"`
	Busy    bool   `json:"busy"`
	History []Row  `json:"history"`
	// Secret is only revealed once the game is over.
	Secret string `json:"secret,omitempty"`
}

// Snapshot copies the game state under a single lock.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Snapshot{
		ID:      g.id,
		Rows:    g.rows,
		Cols:    g.cols,
		Round:   g.round,
		Guess:   string(g.guess),
		Status:  g.status,
		Busy:    g.busy,
		History: make([]Row, len(g.history)),
	}
	for i, r := range g.history {
		s.History[i] = Row{Guess: r.Guess, Classes: append([]Classification(nil), r.Classes...)}
	}
	if g.status.Terminal() {
		s.Secret = g.secret
	}
	return s
}

// isLetter accepts ASCII a–z / A–Z only.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isLetters(s string) bool {
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return s != ""
}
