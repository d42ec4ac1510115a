package tui

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/matthewfesta/Wordle-Clone/internal/game"
)

// logListener mirrors game signals to the log file. It is attached before
// the game exists and bound to the game's id once New returns.
type logListener struct {
	log zerolog.Logger
}

func (l *logListener) bind(gameID string) {
	l.log = log.With().Str("game", gameID).Logger()
}

func (l *logListener) OnLetterChanged(pos int, letter rune) {
	l.log.Debug().Int("pos", pos).Str("letter", string(letter)).Msg("letter changed")
}

func (l *logListener) OnClassified(pos int, c game.Classification) {
	l.log.Debug().Int("pos", pos).Str("class", string(c)).Msg("classified")
}

func (l *logListener) OnInvalidGuess() { l.log.Info().Msg("invalid guess") }

func (l *logListener) OnCommitFailed(err error) {
	l.log.Warn().Err(err).Msg("commit failed")
}

func (l *logListener) OnWin() { l.log.Info().Msg("won") }

func (l *logListener) OnLose(secret string) { l.log.Info().Str("secret", secret).Msg("lost") }
