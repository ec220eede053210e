package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thellimist/parsehelp/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extractor as an MCP stdio server",
	Long: `Run an MCP server on stdin/stdout exposing the parse_help and list_sections
tools. Logs go to stderr; use --verbose to see each call.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("serving MCP over stdio")
		return mcpserver.Serve(mcpserver.New(appVersion, logger))
	},
}
