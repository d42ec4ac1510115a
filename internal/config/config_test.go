package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server.Port, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
server:
  port: "9000"
  daily_salt: from-file
client:
  api_url: http://localhost:9000
  timeout: 3s
words:
  answers_file: /tmp/answers.txt
`), 0o600))

	t.Setenv("DAILY_SALT", "from-env")
	t.Setenv("WORDS_API_TIMEOUT", "7")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Server.DailySalt)
	assert.Equal(t, "http://localhost:9000", cfg.Client.APIURL)
	assert.Equal(t, 7*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "/tmp/answers.txt", cfg.Words.AnswersFile)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadBadInput(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("server: ["), 0o600))
	_, err := Load(p)
	assert.Error(t, err)

	t.Setenv("WORDS_API_TIMEOUT", "soon")
	_, err = Load("")
	assert.Error(t, err)
}
