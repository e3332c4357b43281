package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"panectl/internal/layout"
	"panectl/internal/surface"
	"panectl/internal/views"
)

type deriveOptions struct {
	format string
	save   string
}

func newDeriveCmd() *cobra.Command {
	opts := &deriveOptions{}
	cmd := &cobra.Command{
		Use:   "derive <scaffold.yaml>",
		Short: "Build a layout dump from a YAML scaffold",
		Long: `Derives a layout from a YAML scaffold and prints its dump. Scaffold nodes
carry a layout key (split, hsplit, vsplit, lineup, hlineup, vlineup, stack,
hstack, vstack or tabbing) and children; leaves become views. A leaf with a
ref key becomes the registered view of that reference.

Example scaffold:
  layout: vsplit
  name: Main
  ratio: 0.3
  children:
    - {name: Files, ref: 1}
    - layout: tabbing
      children:
        - {name: Log, ref: 4}
        - {name: Shell, ref: 5}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "output", "o", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&opts.save, "save", "", "Also save the derived layout under this name")
	return cmd
}

func runDerive(cmd *cobra.Command, args []string, opts *deriveOptions) error {
	data, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	d, err := deriveDump(data)
	if err != nil {
		return err
	}
	out, err := encodeDump(d, opts.format)
	if err != nil {
		return err
	}

	if opts.save != "" {
		application, err := newApplication("")
		if err != nil {
			return err
		}
		defer application.Close()
		if err := application.Services().Store.Save(opts.save, d); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved layout %q\n", opts.save)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// deriveDump parses a scaffold and returns the dump of the derived layout.
func deriveDump(data []byte) (layout.Dump, error) {
	doc := surface.NewDocument()
	n, err := surface.Parse(doc, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	reg := views.NewDefaultRegistry(doc, views.Options{})
	root, err := layout.Derive(n, doc, reg.Factory())
	if err != nil {
		return nil, fmt.Errorf("deriving layout: %w", err)
	}
	return root.Persist(), nil
}
