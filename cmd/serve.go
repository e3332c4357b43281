package cmd

import (
	"github.com/spf13/cobra"
)

// newServeCmd defines the serve command.
// It exposes the layout store to MCP clients such as AI assistants.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve layout tools over MCP on stdio",
		Long: `Starts an MCP server on standard input and output offering the tools
layout_list, layout_get, layout_render, layout_validate and layout_save.
Logs are written to standard error.

Configure it in an MCP client as:
  {"command": "panectl", "args": ["serve"]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication("")
			if err != nil {
				return err
			}
			defer application.Close()
			return application.RunMCPServer(cmd.Context())
		},
	}
}
