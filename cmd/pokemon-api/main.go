package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "pokemon-api",
		Short:         "Pokemon review REST API",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newConfigCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
