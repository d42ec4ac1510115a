package tui

import (
	"time"

	"github.com/matthewfesta/Wordle-Clone/internal/dictionary"
	"github.com/matthewfesta/Wordle-Clone/internal/store"
)

// Deps are the collaborators the terminal game needs.
type Deps struct {
	Dict  dictionary.Dictionary
	Store store.Store // optional; live sessions are registered here
	Rows  int
	Cols  int
	// Timeout bounds each dictionary call. Zero means no extra bound.
	Timeout time.Duration
}
