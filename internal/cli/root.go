package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewfesta/Wordle-Clone/internal/config"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globals are flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
}

// load reads config and applies global flag overrides.
func (g *globals) load() (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	cmd := &cobra.Command{
		Use:          "wordle",
		Short:        "Word guessing game for the terminal, plus a local words API",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "wordle.yaml", "path to YAML config (optional)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(g), newPlayCmd(g), newWordsCmd(g))
	return cmd
}
