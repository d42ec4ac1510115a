package daily

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotIssued is returned by Get when no word was recorded for a date.
var ErrNotIssued = errors.New("daily: no word issued for date")

// Word is a word of the day as recorded in the ledger.
type Word struct {
	Date      string `json:"date"`
	WordIndex int    `json:"wordIndex"`
	Word      string `json:"word"`
	Served    int    `json:"served"`
}

// Store records the first word handed out for each date so later requests
// keep getting it even if the answer list changes.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Issue records (date, idx, word) unless the date already has a word, bumps
// the served counter, and returns the stored row.
func (s *Store) Issue(ctx context.Context, date string, idx int, word string) (Word, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Word{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_words(date, word_index, word) VALUES(?,?,?)`,
		date, idx, word,
	); err != nil {
		return Word{}, fmt.Errorf("insert daily word: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE daily_words SET served = served + 1 WHERE date=?`, date,
	); err != nil {
		return Word{}, fmt.Errorf("bump served: %w", err)
	}
	w, err := scanWord(tx.QueryRowContext(ctx,
		`SELECT date, word_index, word, served FROM daily_words WHERE date=?`, date))
	if err != nil {
		return Word{}, err
	}
	return w, tx.Commit()
}

// Get returns the word recorded for date.
func (s *Store) Get(ctx context.Context, date string) (Word, error) {
	w, err := scanWord(s.db.QueryRowContext(ctx,
		`SELECT date, word_index, word, served FROM daily_words WHERE date=?`, date))
	if errors.Is(err, sql.ErrNoRows) {
		return Word{}, ErrNotIssued
	}
	return w, err
}

// History lists recorded words, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]Word, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, word_index, word, served FROM daily_words ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Word, 0, limit)
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.Date, &w.WordIndex, &w.Word, &w.Served); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func scanWord(row *sql.Row) (Word, error) {
	var w Word
	err := row.Scan(&w.Date, &w.WordIndex, &w.Word, &w.Served)
	return w, err
}
