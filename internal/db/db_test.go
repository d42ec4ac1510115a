package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewfesta/Wordle-Clone/assets"
)

func TestMigrateIsIdempotent(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "nested", "words.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn, assets.Migrations()))
	require.NoError(t, Migrate(conn, assets.Migrations()))

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)

	_, err = conn.Exec(`INSERT INTO daily_words(date, word_index, word) VALUES ('2024-01-01', 3, 'crane')`)
	assert.NoError(t, err)
}

func TestMigrateOrderAndFailure(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	fsys := fstest.MapFS{
		"002_b.sql": {Data: []byte(`ALTER TABLE a ADD COLUMN note TEXT;`)},
		"001_a.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
		"README.md": {Data: []byte(`ignored`)},
	}
	require.NoError(t, Migrate(conn, fsys))

	bad := fstest.MapFS{"003_bad.sql": {Data: []byte(`CREATE TABLE ???;`)}}
	err = Migrate(conn, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "003_bad.sql")

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestOpenUsesWAL(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	defer conn.Close()

	var mode string
	require.NoError(t, conn.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrateScriptOwnsTransaction(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	fsys := fstest.MapFS{
		"001_t.sql": {Data: []byte(`CREATE TABLE t (id INTEGER PRIMARY KEY);
INSERT INTO t(id) VALUES (1), (2);`)},
		"002_rebuild_t.sql": {Data: []byte(`PRAGMA foreign_keys=OFF;
BEGIN TRANSACTION;
CREATE TABLE t_new (id INTEGER PRIMARY KEY, label TEXT NOT NULL DEFAULT 'x');
INSERT INTO t_new(id) SELECT id FROM t;
DROP TABLE t;
ALTER TABLE t_new RENAME TO t;
COMMIT;
PRAGMA foreign_keys=ON;`)},
	}
	require.NoError(t, Migrate(conn, fsys))
	require.NoError(t, Migrate(conn, fsys))

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(1) FROM t WHERE label = 'x'`).Scan(&n))
	assert.Equal(t, 2, n)

	var recorded int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(1) FROM _migrations WHERE name = '002_rebuild_t.sql'`).Scan(&recorded))
	assert.Equal(t, 1, recorded)
}

func TestOwnsTx(t *testing.T) {
	tests := []struct {
		script string
		want   bool
	}{
		{"CREATE TABLE a (id INTEGER);", false},
		{"begin transaction;\nDROP TABLE a;\ncommit;", true},
		{"BEGIN;\nDROP TABLE a;\nCOMMIT;", true},
		{"PRAGMA foreign_keys = OFF;\nDROP TABLE a;", true},
		{"CREATE TRIGGER x AFTER INSERT ON a BEGIN SELECT 1; END;", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ownsTx(tt.script), tt.script)
	}
}
