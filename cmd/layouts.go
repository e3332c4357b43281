package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"panectl/internal/layout"
	"panectl/internal/views"
)

func newLayoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage saved layouts",
		Long: `Lists, saves, prints and deletes the layouts kept in the layout store.
Presets are listed alongside and can be read by name until a saved layout
of the same name shadows them.`,
	}
	cmd.AddCommand(newLayoutsListCmd())
	cmd.AddCommand(newLayoutsGetCmd())
	cmd.AddCommand(newLayoutsSaveCmd())
	cmd.AddCommand(newLayoutsDeleteCmd())
	return cmd
}

func newLayoutsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved layouts and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication("")
			if err != nil {
				return err
			}
			defer application.Close()

			saved, err := application.Services().Store.List()
			if err != nil {
				return err
			}

			writeLayoutTable(cmd.OutOrStdout(), saved)
			return nil
		},
	}
}

// writeLayoutTable lists saved layouts, then the presets they do not shadow.
func writeLayoutTable(out io.Writer, saved []string) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("SOURCE"),
	})
	for _, name := range saved {
		t.AppendRow(table.Row{name, text.FgGreen.Sprint("saved")})
	}
	for _, name := range views.PresetNames() {
		if !slices.Contains(saved, name) {
			t.AppendRow(table.Row{name, text.FgHiBlack.Sprint("preset")})
		}
	}
	t.Render()
}

func newLayoutsGetCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print the dump of a saved layout or preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication("")
			if err != nil {
				return err
			}
			defer application.Close()

			root, _, err := application.Services().OpenLayout(args[0])
			if err != nil {
				return err
			}
			out, err := encodeDump(root.Persist(), format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "json", "Output format: json or yaml")
	return cmd
}

func newLayoutsSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <dump-file>",
		Short: "Save a JSON or YAML dump under a name",
		Long: `Validates a dump and saves it under a name, replacing any layout saved
under that name before. Use - to read the dump from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}
			// restoring proves every reference resolves
			root, err := restoreDump(data)
			if err != nil {
				return err
			}

			application, err := newApplication("")
			if err != nil {
				return err
			}
			defer application.Close()

			if err := application.Services().Store.Save(args[0], root.Persist()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved layout %q (%d views)\n", args[0], len(layout.Leaves(root)))
			return nil
		},
	}
}

func newLayoutsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication("")
			if err != nil {
				return err
			}
			defer application.Close()

			if err := application.Services().Store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted layout %q\n", args[0])
			return nil
		},
	}
}
