package cmd

import (
	"github.com/spf13/cobra"

	"github.com/domuslabs/cashlens/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cashlens configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure cashlens and generates a .cashlens.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
