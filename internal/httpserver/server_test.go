package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewfesta/Wordle-Clone/assets"
	"github.com/matthewfesta/Wordle-Clone/internal/daily"
	"github.com/matthewfesta/Wordle-Clone/internal/db"
	"github.com/matthewfesta/Wordle-Clone/internal/dictionary"
	"github.com/matthewfesta/Wordle-Clone/internal/words"
)

var today = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T, withLedger bool) (*httptest.Server, *daily.Store) {
	t.Helper()
	lists, err := words.FromLists([]string{"crane", "slate", "allow", "words"}, []string{"lolly", "sword"})
	require.NoError(t, err)

	var store *daily.Store
	if withLedger {
		conn, err := db.Open(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = conn.Close() })
		require.NoError(t, db.Migrate(conn, assets.Migrations()))
		store = daily.NewStore(conn)
	}

	s := New(Options{Lists: lists, Daily: store, Salt: "test", Now: func() time.Time { return today }})
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, false)
	var body map[string]bool
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.True(t, body["ok"])
}

func TestWordOfTheDayIsRecorded(t *testing.T) {
	srv, store := newTestServer(t, true)

	var first, second wordRes
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/word-of-the-day", &first))
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/word-of-the-day", &second))
	assert.Equal(t, first, second)
	assert.Equal(t, "2024-06-10", first.Date)
	assert.Len(t, first.Word, 5)

	rec, err := store.Get(context.Background(), "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, first.Word, rec.Word)
	assert.Equal(t, 2, rec.Served)
}

func TestWordOfTheDayRandom(t *testing.T) {
	srv, _ := newTestServer(t, false)
	var res wordRes
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/word-of-the-day?random=1", &res))
	assert.Contains(t, []string{"crane", "slate", "allow", "words"}, res.Word)
	assert.Empty(t, res.Date)
}

func TestValidateWord(t *testing.T) {
	srv, _ := newTestServer(t, false)

	post := func(body string) (*http.Response, validateRes) {
		resp, err := http.Post(srv.URL+"/validate-word", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		var out validateRes
		if resp.StatusCode == http.StatusOK {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		}
		return resp, out
	}

	resp, out := post(`{"word":"LOLLY"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, validateRes{Word: "lolly", ValidWord: true}, out)

	_, out = post(`{"word":"qqqqq"}`)
	assert.False(t, out.ValidWord)

	resp, _ = post(`{"word":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDailyHistoryHidesToday(t *testing.T) {
	srv, store := newTestServer(t, true)
	ctx := context.Background()
	_, err := store.Issue(ctx, "2024-06-08", 1, "slate")
	require.NoError(t, err)
	_, err = store.Issue(ctx, "2024-06-09", 2, "allow")
	require.NoError(t, err)
	_, err = store.Issue(ctx, "2024-06-10", 3, "words")
	require.NoError(t, err)

	var hist historyRes
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/daily/history?limit=1", &hist))
	require.Len(t, hist.Words, 1)
	assert.Equal(t, "2024-06-09", hist.Words[0].Date)

	var rec daily.Word
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/daily/2024-06-08", &rec))
	assert.Equal(t, "slate", rec.Word)

	assert.Equal(t, http.StatusForbidden, getJSON(t, srv.URL+"/daily/2024-06-10", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/daily/2024-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/daily/yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/daily/history?limit=x", nil))
}

func TestDailyRoutesNeedLedger(t *testing.T) {
	srv, _ := newTestServer(t, false)
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/daily/history", nil))
}

func TestMetricsExposed(t *testing.T) {
	srv, _ := newTestServer(t, false)
	vr, err := http.Post(srv.URL+"/validate-word", "application/json", strings.NewReader(`{"word":"crane"}`))
	require.NoError(t, err)
	_ = vr.Body.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `words_api_validations_total{result="valid"} 1`)
}

// The HTTP client and the server speak the same wire format.
func TestClientAgainstServer(t *testing.T) {
	srv, _ := newTestServer(t, true)
	c := dictionary.NewClient(srv.URL)

	w, err := c.WordOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(w), w)

	ok, err := c.Validate(context.Background(), "SWORD")
	require.NoError(t, err)
	assert.True(t, ok)
}
