package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/matthewfesta/Wordle-Clone/assets"
	"github.com/matthewfesta/Wordle-Clone/internal/daily"
	"github.com/matthewfesta/Wordle-Clone/internal/db"
	"github.com/matthewfesta/Wordle-Clone/internal/httpserver"
	"github.com/matthewfesta/Wordle-Clone/internal/logging"
	"github.com/matthewfesta/Wordle-Clone/internal/words"
)

func newServeCmd(g *globals) *cobra.Command {
	var port, dbPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the words API (word of the day + validate word)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}
			if dbPath != "" {
				cfg.Server.DBPath = dbPath
			}

			cleanup, err := logging.Setup(logging.Config{Level: cfg.Log.Level, Console: true})
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			lists, err := words.Load(words.Config{AnswersFile: cfg.Words.AnswersFile, AllowedFile: cfg.Words.AllowedFile})
			if err != nil {
				log.Error().Err(err).Msg("failed to load word lists")
				return err
			}
			a, n := lists.Stats()
			log.Info().Int("answers", a).Int("allowed", n).Msg("word lists loaded")

			conn, err := db.Open(cfg.Server.DBPath)
			if err != nil {
				log.Error().Err(err).Str("db", cfg.Server.DBPath).Msg("open db")
				return err
			}
			defer conn.Close()
			if err := db.Migrate(conn, assets.Migrations()); err != nil {
				log.Error().Err(err).Msg("migrate")
				return err
			}

			srv := httpserver.New(httpserver.Options{
				Lists:        lists,
				Daily:        daily.NewStore(conn),
				Salt:         cfg.Server.DailySalt,
				ClientOrigin: cfg.Server.ClientOrigin,
			})
			log.Info().Str("port", cfg.Server.Port).Msg("starting words api")
			if err := srv.Start(":" + cfg.Server.Port); err != nil {
				log.Error().Err(err).Msg("server exited")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default from config, 5175)")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database path")
	return cmd
}
