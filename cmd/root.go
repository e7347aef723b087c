package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cashlens",
	Short: "Personal finance dashboard with usage-aware assistance",
	Long: `CashLens is a personal finance dashboard. It tracks how you use its
sections, personalizes the built-in Domus financial assistant with that
usage, and serves the dashboard pages and chat API from a local backend.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".cashlens.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
