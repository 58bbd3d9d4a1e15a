package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ecfw/fl2tool/internal/env"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:     env.AppName,
		Short:   env.AppName + " - EC firmware FL2 container tool",
		Version: env.Version,
	}

	rootCmd.AddCommand(DefineCheckCommand())
	rootCmd.AddCommand(DefineFromFL2Command())
	rootCmd.AddCommand(DefineToFL2Command())
	rootCmd.AddCommand(DefineVariantsCommand())

	return rootCmd.Execute()
}
