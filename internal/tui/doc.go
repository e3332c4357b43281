// Package tui provides the interactive terminal interface for panectl.
//
// The interface shows one live layout tree and lets the user mutate it with
// the keyboard. It is a Bubble Tea program: the Model owns the layout root,
// the view registry and the layout store, Update applies key presses to the
// tree, and View paints it with internal/render.
//
// # Key Features
//
//   - Focus cycling over the visible views (tab / shift+tab)
//   - Maximize and restore of the focused view
//   - Closing views, which dissolves containers left with too few children
//   - Splitting the focused view right or down with a new view
//   - Moving the nearest divider and cycling tabs
//   - Saving and reloading the layout through the layout store
//   - Copying the layout dump to the clipboard
//
// Log entries produced while the TUI runs are routed through pkg/logging
// into the shared log buffer that log views display.
package tui
