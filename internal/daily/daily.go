// internal/daily/daily.go
//
// Deterministic word-of-the-day selection: the answer index for a date is
// HMAC-SHA256(salt, YYYY-MM-DD) modulo the answer count, so every server with
// the same salt and list agrees on the word.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a date to an answer index: HMAC-SHA256(salt, DateKey(date))
// read as a big-endian uint64 from the first 8 bytes of the MAC, modulo
// answersLen. Eight bytes fill a uint64 exactly, and against lists of a few
// thousand words the modulo bias is negligible. Changing this formula or the
// salt reshuffles every future date, so issued words are kept in the Store.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	mac := h.Sum(nil)
	return int(binary.BigEndian.Uint64(mac[:8]) % uint64(answersLen))
}
