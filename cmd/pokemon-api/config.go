package main

import (
	"github.com/deppfellow/pokemon-api/internal/config"
	"github.com/deppfellow/pokemon-api/internal/lib/utils"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			redacted := *cfg
			redacted.Database.Password = utils.Redact(cfg.Database.Password)
			if cfg.Observability != nil {
				obs := *cfg.Observability
				obs.NewRelic.LicenseKey = utils.Redact(obs.NewRelic.LicenseKey)
				redacted.Observability = &obs
			}

			return utils.PrintJSON(cmd.OutOrStdout(), redacted)
		},
	}
}
