// internal/httpserver/routes_daily.go
//
// Daily ledger endpoints, mounted under /daily when a ledger is configured:
//   - GET /daily/history       → recorded words for past dates, newest first (?limit=N, max 100)
//   - GET /daily/{date}        → the recorded word for a past date (YYYY-MM-DD)
//
// Today's word is never revealed here; use /word-of-the-day.

package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/matthewfesta/Wordle-Clone/internal/daily"
)

func (s *Server) mountDaily(r chi.Router) {
	if s.daily == nil {
		return
	}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/history", s.handleDailyHistory)
		r.Get("/{date}", s.handleDailyWord)
	})
}

// historyRes is returned by /daily/history.
type historyRes struct {
	Words []daily.Word `json:"words"`
}

func (s *Server) handleDailyHistory(w http.ResponseWriter, r *http.Request) {
	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = min(n, 100)
	}
	// One extra row so today's entry can be dropped without shrinking the page.
	rows, err := s.daily.History(r.Context(), limit+1)
	if err != nil {
		log.Error().Err(err).Msg("daily history")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	today := daily.DateKey(s.now())
	out := make([]daily.Word, 0, limit)
	for _, row := range rows {
		if row.Date >= today || len(out) == limit {
			continue
		}
		out = append(out, row)
	}
	writeJSON(w, http.StatusOK, historyRes{Words: out})
}

func (s *Server) handleDailyWord(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	if date >= daily.DateKey(s.now()) {
		writeError(w, http.StatusForbidden, "not_yet")
		return
	}
	rec, err := s.daily.Get(r.Context(), date)
	if errors.Is(err, daily.ErrNotIssued) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily word")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
