package cmd

import (
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [layout]",
		Short: "Edit a layout interactively",
		Long: `Opens a saved layout or preset in the terminal UI. Without an argument the
layout named by layout.startup in the configuration is opened.

Keys: tab/shift+tab focus, m maximize, x close, s/S split, [ ] move the
divider, n next tab, w save, r reload, y copy the dump, ? help, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			application, err := newApplication(name)
			if err != nil {
				return err
			}
			defer application.Close()
			return application.RunTUI(cmd.Context())
		},
	}
}
