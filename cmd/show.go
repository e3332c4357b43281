package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"panectl/internal/layout"
	"panectl/internal/surface"
	"panectl/internal/views"
)

var errShowArgs = errors.New("expected either a layout name or --file")

type showOptions struct {
	file    string
	width   int
	height  int
	outline bool
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show [layout]",
		Short: "Render a layout to the terminal",
		Long: `Renders a saved layout or preset, or a dump file given with --file, to
standard output. The size defaults to the terminal size, or 80x24 when the
output is not a terminal.

Examples:
  panectl show ide
  panectl show --file layout.json --width 120 --height 40
  panectl show dashboard --outline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Dump file to render, JSON or YAML (- for stdin)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Height in cells")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "Print the container tree instead of the drawing")
	return cmd
}

func runShow(cmd *cobra.Command, args []string, opts *showOptions) error {
	width, height := renderSize(cmd.OutOrStdout(), opts.width, opts.height)

	if opts.file != "" {
		if len(args) > 0 {
			return errShowArgs
		}
		data, err := readInput(opts.file, cmd.InOrStdin())
		if err != nil {
			return err
		}
		root, err := restoreDump(data)
		if err != nil {
			return err
		}
		return writeLayout(cmd.OutOrStdout(), root, width, height, opts.outline)
	}

	if len(args) == 0 {
		return errShowArgs
	}
	application, err := newApplication("")
	if err != nil {
		return err
	}
	defer application.Close()

	root, _, err := application.Services().OpenLayout(args[0])
	if err != nil {
		return err
	}
	return writeLayout(cmd.OutOrStdout(), root, width, height, opts.outline)
}

// restoreDump restores a JSON or YAML dump with the default views.
func restoreDump(data []byte) (*layout.Root, error) {
	d, err := layout.DecodeDump(data)
	if err != nil {
		return nil, err
	}
	doc := surface.NewDocument()
	reg := views.NewDefaultRegistry(doc, views.Options{})
	return layout.RestoreRoot(d, reg.Resolve, doc)
}
