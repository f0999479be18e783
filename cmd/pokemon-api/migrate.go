package main

import (
	"github.com/deppfellow/pokemon-api/internal/config"
	"github.com/deppfellow/pokemon-api/internal/database"
	"github.com/deppfellow/pokemon-api/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Observability)

			return database.Migrate(cmd.Context(), &log, cfg)
		},
	}
}
