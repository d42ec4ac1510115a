// internal/game/types.go
//
// Core type definitions for the word-guessing game engine.
// Defines:
//   - Classification: per-letter verdict for a committed guess.
//   - Status: coarse lifecycle of a game (in progress / won / lost).
//   - Row: one scored guess on the board.
//   - Pending / Outcome: values exchanged around a commit.

package game

// Classification represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret at this exact position.
//   - "present": letter is in the secret elsewhere (limited by remaining copies).
//   - "absent":  letter is not in the secret, or every copy is already accounted for.
type Classification string

const (
	Absent  Classification = "absent"
	Present Classification = "present"
	Correct Classification = "correct"
)

// Status is the lifecycle state of a game. Won and Lost are absorbing.
type Status string

const (
	InProgress Status = "in_progress"
	Won        Status = "won"
	Lost       Status = "lost"
)

// Terminal reports whether s is Won or Lost.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// Row is a committed guess together with its classifications.
type Row struct {
	Guess   string           `json:"guess"`
	Classes []Classification `json:"classes"`
}

// Pending describes a full-length guess handed out by BeginCommit and
// awaiting a dictionary verdict.
type Pending struct {
	Guess string
	// Winning is true when Guess equals the secret; such a guess needs no
	// validation since the secret is a dictionary word by construction.
	Winning bool
}

// Outcome summarises what a commit did to the game.
type Outcome struct {
	Committed bool             // a row was scored and the round advanced
	Invalid   bool             // dictionary rejected the guess
	Classes   []Classification // scored row, nil unless Committed
	Status    Status           // status after the commit
}

// Classifier scores a guess against a secret of the same length.
type Classifier func(guess, secret string) []Classification
