package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/domuslabs/cashlens/internal/mcp"
	"github.com/domuslabs/cashlens/internal/tracker"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the usage profile and the financial assistant as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		adv, err := buildAdvisor(cmd.Context(), cfg, database)
		if err != nil {
			// Stats tools still work without an advisor.
			fmt.Fprintf(os.Stderr, "Warning: assistant unavailable: %v\n", err)
			adv = nil
		}

		tr := tracker.New(st, nil, cfg.Tracking.Exclude)

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "cashlens MCP server started on stdio (db=%s)\n", cfg.Storage.Path)

		srv := mcpserver.NewServer(tr, adv, st)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
