package cmd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"panectl/internal/layout"
	"panectl/internal/render"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// readInput reads path, or in when path is "-".
func readInput(path string, in io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(in)
	}
	return os.ReadFile(path)
}

// encodeDump formats d as json or yaml.
func encodeDump(d layout.Dump, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := layout.MarshalDumpIndent(d)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return layout.MarshalDumpYAML(d)
	}
	return nil, fmt.Errorf("unknown format %q, expected json or yaml", format)
}

// terminalSize returns the size of out when it is a terminal. The last line
// is left free for the shell prompt.
func terminalSize(out io.Writer) (width, height int, ok bool) {
	f, isFile := out.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 1 {
		return 0, 0, false
	}
	return w, h - 1, true
}

// renderSize resolves the drawing area from flags, falling back to the
// terminal size and then to 80x24.
func renderSize(out io.Writer, width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, ok := terminalSize(out)
	if !ok {
		tw, th = defaultWidth, defaultHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}

// writeLayout draws root, or its outline, into out.
func writeLayout(out io.Writer, root *layout.Root, width, height int, outline bool) error {
	root.SetSize(layout.Size{Width: width, Height: height})
	var text string
	if outline {
		text = render.Outline(root)
	} else {
		text = render.Renderer{}.Render(root) + "\n"
	}
	_, err := io.WriteString(out, text)
	return err
}
