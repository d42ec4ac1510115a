package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthewfesta/Wordle-Clone/internal/words"
)

func newWordsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "words [word...]",
		Short: "Show word list stats and check words against the allowed list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			lists, err := words.Load(words.Config{AnswersFile: cfg.Words.AnswersFile, AllowedFile: cfg.Words.AllowedFile})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			a, n := lists.Stats()
			fmt.Fprintf(out, "answers: %d\nallowed: %d\n", a, n)
			for _, w := range args {
				switch {
				case lists.IsAnswer(w):
					fmt.Fprintf(out, "%s: answer\n", w)
				case lists.IsAllowed(w):
					fmt.Fprintf(out, "%s: allowed\n", w)
				default:
					fmt.Fprintf(out, "%s: not a word\n", w)
				}
			}
			return nil
		},
	}
}
