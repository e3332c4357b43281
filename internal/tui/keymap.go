package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// It helps in managing and displaying help information.
type KeyMap struct {
	FocusNext   key.Binding
	FocusPrev   key.Binding
	Maximize    key.Binding
	Close       key.Binding
	SplitRight  key.Binding
	SplitDown   key.Binding
	DividerGrow key.Binding
	DividerDrop key.Binding
	NextTab     key.Binding
	Save        key.Binding
	Reload      key.Binding
	Yank        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "maximize/restore"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close view"),
		),
		SplitRight: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split right"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "split down"),
		),
		DividerGrow: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "move divider forward"),
		),
		DividerDrop: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "move divider back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next tab"),
		),
		Save: key.NewBinding(
			key.WithKeys("w", "ctrl+s"),
			key.WithHelp("w", "save layout"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload saved layout"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy dump"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.NextTab, k.Maximize},              // Navigation column
		{k.SplitRight, k.SplitDown, k.Close, k.DividerGrow, k.DividerDrop}, // Layout column
		{k.Save, k.Reload, k.Yank, k.Help, k.Quit},                      // General column
	}
}

// ShortHelp returns a minimal set of bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Maximize, k.SplitRight, k.Close, k.Help, k.Quit}
}
