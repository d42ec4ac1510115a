// internal/httpserver/routes_words.go
//
// Words endpoints consumed by the game client:
//   - GET  /word-of-the-day     → {"word": "...", "date": "YYYY-MM-DD"}
//                                  ?random=1 returns a random answer instead.
//   - POST /validate-word        → body {"word": "..."}; returns {"word": "...", "validWord": bool}
//
// The daily word is chosen with daily.WordIndex and, when a ledger is
// configured, recorded so the same word is served for the whole date.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/matthewfesta/Wordle-Clone/internal/daily"
)

func (s *Server) mountWords(r chi.Router) {
	r.Get("/word-of-the-day", s.handleWordOfTheDay)
	r.Post("/validate-word", s.handleValidate)
}

// wordRes is returned by GET /word-of-the-day.
type wordRes struct {
	Word string `json:"word"`
	Date string `json:"date,omitempty"`
}

func (s *Server) handleWordOfTheDay(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("random"); q == "1" || q == "true" {
		s.metrics.wordsServed.WithLabelValues("random").Inc()
		writeJSON(w, http.StatusOK, wordRes{Word: s.lists.RandomAnswer()})
		return
	}

	now := s.now()
	date := daily.DateKey(now)
	idx := daily.WordIndex(now, s.salt, len(s.lists.Answers()))
	word := s.lists.AnswerAt(idx)

	if s.daily != nil {
		rec, err := s.daily.Issue(r.Context(), date, idx, word)
		if err != nil {
			log.Error().Err(err).Str("date", date).Msg("record daily word")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		word = rec.Word
	}
	s.metrics.wordsServed.WithLabelValues("daily").Inc()
	writeJSON(w, http.StatusOK, wordRes{Word: word, Date: date})
}

// validateReq/Res payloads for POST /validate-word.
type validateReq struct {
	Word string `json:"word"`
}
type validateRes struct {
	Word      string `json:"word"`
	ValidWord bool   `json:"validWord"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word := strings.ToLower(strings.TrimSpace(req.Word))
	valid := s.lists.IsAllowed(word)

	result := "invalid"
	if valid {
		result = "valid"
	}
	s.metrics.validations.WithLabelValues(result).Inc()
	writeJSON(w, http.StatusOK, validateRes{Word: word, ValidWord: valid})
}
