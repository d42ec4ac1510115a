package cli

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/matthewfesta/Wordle-Clone/internal/config"
	"github.com/matthewfesta/Wordle-Clone/internal/dictionary"
	"github.com/matthewfesta/Wordle-Clone/internal/logging"
	"github.com/matthewfesta/Wordle-Clone/internal/store"
	"github.com/matthewfesta/Wordle-Clone/internal/tui"
	"github.com/matthewfesta/Wordle-Clone/internal/words"
)

type playFlags struct {
	apiURL  string
	offline bool
	random  bool
	timeout time.Duration
}

func newPlayCmd(g *globals) *cobra.Command {
	f := &playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			cleanup, err := logging.Setup(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			dict, err := buildDictionary(cfg, f)
			if err != nil {
				return err
			}
			log.Info().Bool("offline", f.offline).Bool("random", f.random).Msg("play")
			return tui.Run(tui.Deps{
				Dict:    dict,
				Store:   store.NewMemoryStore(),
				Timeout: cfg.Client.Timeout,
			})
		},
	}
	cmd.Flags().StringVar(&f.apiURL, "api", "", "words API base URL (default from config)")
	cmd.Flags().BoolVar(&f.offline, "offline", false, "use built-in word lists instead of the words API")
	cmd.Flags().BoolVar(&f.random, "random", false, "random secret word instead of the word of the day")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-request timeout for the words API")
	return cmd
}

// buildDictionary picks the HTTP client or the local lists.
func buildDictionary(cfg config.Config, f *playFlags) (dictionary.Dictionary, error) {
	if f.timeout > 0 {
		cfg.Client.Timeout = f.timeout
	}
	if f.offline {
		lists, err := words.Load(words.Config{AnswersFile: cfg.Words.AnswersFile, AllowedFile: cfg.Words.AllowedFile})
		if err != nil {
			return nil, err
		}
		return dictionary.NewLocal(lists,
			dictionary.WithSalt(cfg.Server.DailySalt),
			dictionary.WithRandomWord(f.random),
		), nil
	}
	url := cfg.Client.APIURL
	if f.apiURL != "" {
		url = f.apiURL
	}
	return dictionary.NewClient(url,
		dictionary.WithRandom(f.random),
		dictionary.WithTimeout(cfg.Client.Timeout),
	), nil
}
