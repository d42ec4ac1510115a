// Package config loads settings from an optional YAML file, then applies
// environment overrides (a .env file is loaded first when present).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Words  WordsConfig  `yaml:"words"`
	Client ClientConfig `yaml:"client"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // used by play; the TUI owns the terminal
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	DBPath       string `yaml:"db_path"`
	DailySalt    string `yaml:"daily_salt"`
	ClientOrigin string `yaml:"client_origin"`
}

type WordsConfig struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
}

type ClientConfig struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", File: "wordle.log"},
		Server: ServerConfig{Port: "5175", DBPath: "./data/words.db", DailySalt: "local_dev_salt", ClientOrigin: "http://localhost:5173"},
		Client: ClientConfig{APIURL: "https://words.dev-apis.com", Timeout: 10 * time.Second},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist) and the environment.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setStr(&cfg.Log.Level, "LOG_LEVEL")
	setStr(&cfg.Log.File, "LOG_FILE")
	setStr(&cfg.Server.Port, "PORT")
	setStr(&cfg.Server.DBPath, "DB_PATH")
	setStr(&cfg.Server.DailySalt, "DAILY_SALT")
	setStr(&cfg.Server.ClientOrigin, "CLIENT_ORIGIN")
	setStr(&cfg.Words.AnswersFile, "WORDS_ANSWERS_FILE")
	setStr(&cfg.Words.AllowedFile, "WORDS_ALLOWED_FILE")
	setStr(&cfg.Client.APIURL, "WORDS_API_URL")
	if v := os.Getenv("WORDS_API_TIMEOUT"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("WORDS_API_TIMEOUT: %w", err)
		}
		cfg.Client.Timeout = d
	}
	return nil
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// parseDuration accepts Go durations ("5s") or bare seconds ("5").
func parseDuration(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
