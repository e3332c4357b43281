package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"

	"panectl/internal/layout"
	"panectl/internal/views"
	"panectl/pkg/logging"
)

const subsystem = "TUI"

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

const (
	statusClearAfter = 3 * time.Second
	dividerStep      = 2
	clockInterval    = time.Second
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

// LayoutStore persists named layout dumps. *store.Store satisfies it.
type LayoutStore interface {
	Save(name string, d layout.Dump) error
	Load(name string) (layout.Dump, error)
}

// Options configure a Model.
type Options struct {
	Root     *layout.Root
	Registry *views.Registry
	// Store may be nil, which disables saving and reloading.
	Store LayoutStore
	// LayoutName is the store key used by save and reload.
	LayoutName string
	// DefaultRatio is applied to splits created from the keyboard.
	DefaultRatio float64
	ShowHelp     bool
	LogChannel   <-chan logging.LogEntry
}

// Model is the Bubble Tea model of the layout TUI.
type Model struct {
	root       *layout.Root
	reg        *views.Registry
	store      LayoutStore
	layoutName string
	ratio      float64

	keys     KeyMap
	help     help.Model
	showHelp bool

	focused string
	width   int
	height  int
	// spawned counts views created by splits; it selects the next spec.
	spawned int

	statusMessage     string
	statusType        MessageType
	statusClearCancel chan struct{}

	logChannel <-chan logging.LogEntry
}

// NewModel returns a model showing opts.Root.
func NewModel(opts Options) *Model {
	ratio := opts.DefaultRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	m := &Model{
		root:       opts.Root,
		reg:        opts.Registry,
		store:      opts.Store,
		layoutName: opts.LayoutName,
		ratio:      ratio,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   opts.ShowHelp,
		logChannel: opts.LogChannel,
	}
	m.ensureFocus()
	return m
}

// Focused returns the ID of the focused view container.
func (m *Model) Focused() string { return m.focused }

// Root returns the layout shown by the model.
func (m *Model) Root() *layout.Root { return m.root }

// StatusMessage returns the current status bar message.
func (m *Model) StatusMessage() string { return m.statusMessage }
