package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/froggy1014/orval/internal/mcpserver"
)

func newMCPCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve orval tools over the Model Context Protocol (stdio)",
		Long: `Start an MCP server on stdin/stdout exposing the verb_options and
operations tools. Logs go to stderr. Defaults are read from ORVAL_*
environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.SetDefault(newRunLogger(cmd.ErrOrStderr(), verbose))
			return mcpserver.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
