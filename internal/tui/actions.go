package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"panectl/internal/layout"
	"panectl/pkg/logging"
)

// nextFocus returns the element of order delta steps away from current,
// wrapping at both ends.
func nextFocus(order []string, current string, delta int) string {
	if len(order) == 0 {
		return current
	}

	// Clamp delta to +/-1 so that unexpected values do not lead to panics.
	if delta > 0 {
		delta = 1
	} else if delta < 0 {
		delta = -1
	}

	idx := -1
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}

	if idx == -1 {
		if delta >= 0 {
			return order[0]
		}
		return order[len(order)-1]
	}

	n := len(order)
	idx = (idx + delta + n) % n
	return order[idx]
}

func (m *Model) errorStatus(format string, args ...any) tea.Cmd {
	return m.SetStatusMessage(fmt.Sprintf(format, args...), StatusBarError, statusClearAfter)
}

func (m *Model) infoStatus(format string, args ...any) tea.Cmd {
	return m.SetStatusMessage(fmt.Sprintf(format, args...), StatusBarSuccess, statusClearAfter)
}

// focusOrder lists the IDs of the views that can take the focus.
func (m *Model) focusOrder() []string {
	var order []string
	for _, v := range layout.VisibleLeaves(m.root) {
		order = append(order, v.ID())
	}
	return order
}

// focusedView returns the focused view container, or nil for an empty
// layout.
func (m *Model) focusedView() *layout.ViewContainer {
	if v := m.root.Maximized(); v != nil {
		return v
	}
	if v, ok := layout.FindByID(m.root, m.focused).(*layout.ViewContainer); ok && layout.EffectiveVisible(v) {
		return v
	}
	return nil
}

// ensureFocus moves the focus to the first visible view when the focused
// one went away or got hidden.
func (m *Model) ensureFocus() {
	if v := m.focusedView(); v != nil {
		m.focused = v.ID()
		return
	}
	m.focused = ""
	if leaves := layout.VisibleLeaves(m.root); len(leaves) > 0 {
		m.focused = leaves[0].ID()
	}
}

// resize hands the area left by the status bar and help to the layout.
func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.help.Width = m.width
	m.root.SetSize(layout.Size{Width: m.width, Height: max(0, m.height-m.chromeHeight())})
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	maximized := m.root.Maximized()
	if maximized != nil {
		maximized.Minimize()
	}
	m.focused = nextFocus(m.focusOrder(), m.focused, delta)
	if maximized != nil {
		if v := m.focusedView(); v != nil {
			v.Maximize()
		}
	}
	return nil
}

func (m *Model) toggleMaximize() tea.Cmd {
	v := m.focusedView()
	if v == nil {
		return nil
	}
	if m.root.Maximized() == v {
		v.Minimize()
		return nil
	}
	v.Maximize()
	return nil
}

func (m *Model) closeFocused() tea.Cmd {
	v := m.focusedView()
	if v == nil {
		return nil
	}
	if v.Fixed() {
		return m.errorStatus("View %q is fixed and cannot be closed", v.Name())
	}
	name := v.Name()
	v.Destroy()
	m.ensureFocus()
	logging.Debug(subsystem, "Closed view %q, %d containers left", name, layout.Count(m.root))
	return m.infoStatus("Closed %q", name)
}

// splitFocused places a new view beside the focused one, below it when
// down is set.
func (m *Model) splitFocused(down bool) tea.Cmd {
	v := m.focusedView()
	if v == nil || m.reg == nil {
		return nil
	}
	if m.root.Maximized() != nil {
		return m.errorStatus("Restore the maximized view before splitting")
	}
	parent := v.Parent()
	if parent == nil {
		return nil
	}
	if parent.FixedLayout() {
		return m.errorStatus("Layout of %q is fixed", parent.Name())
	}

	specs := m.reg.Specs()
	if len(specs) == 0 {
		return m.errorStatus("No views registered")
	}
	spec := specs[m.spawned%len(specs)]
	m.spawned++

	view, err := m.reg.Resolve(spec.Ref)
	if err != nil {
		logging.Error(subsystem, err, "Failed to create view %q", spec.Name)
		return m.errorStatus("Split failed: %v", err)
	}
	vc := layout.NewViewContainer(m.reg.Document(), view, layout.ViewOptions{
		Options: layout.Options{Name: spec.Name},
	})

	area := layout.DropRight
	if down {
		area = layout.DropBottom
	}
	if !(layout.SplitPlacement{}).Place(parent, vc, v, area) {
		vc.Destroy()
		return m.errorStatus("Cannot split %q", v.Name())
	}
	if s, ok := vc.Parent().(*layout.Split); ok {
		_ = s.SetRatio(m.ratio)
	}
	m.focused = vc.ID()
	logging.Debug(subsystem, "Split %q with new view %q", v.Name(), spec.Name)
	return m.infoStatus("Opened %q", spec.Name)
}

// nearest returns the closest ancestor of c of type T.
func nearest[T layout.ParentContainer](c layout.Container) (T, bool) {
	for p := c.Parent(); p != nil; p = p.Parent() {
		if t, ok := p.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func (m *Model) moveDivider(delta int) tea.Cmd {
	v := m.focusedView()
	if v == nil || m.root.Maximized() != nil {
		return nil
	}
	s, ok := nearest[*layout.Split](v)
	if !ok {
		return m.errorStatus("%q is not inside a split", v.Name())
	}
	if !s.MoveDivider(delta) {
		return m.errorStatus("Divider of %q cannot move further", s.Name())
	}
	return nil
}

func (m *Model) nextTab() tea.Cmd {
	v := m.focusedView()
	if v == nil || m.root.Maximized() != nil {
		return nil
	}
	t, ok := nearest[*layout.Tabbing](v)
	if !ok {
		return m.errorStatus("%q is not inside a tab group", v.Name())
	}
	if err := t.Activate((t.ActiveIndex() + 1) % t.Len()); err != nil {
		return m.errorStatus("Switching tabs failed: %v", err)
	}
	if leaves := layout.VisibleLeaves(t.Active()); len(leaves) > 0 {
		m.focused = leaves[0].ID()
	}
	return nil
}

func (m *Model) saveLayout() tea.Cmd {
	if m.store == nil {
		return m.errorStatus("No layout store configured")
	}
	if err := m.store.Save(m.layoutName, m.root.Persist()); err != nil {
		logging.Error(subsystem, err, "Failed to save layout %q", m.layoutName)
		return m.errorStatus("Save failed: %v", err)
	}
	logging.Info(subsystem, "Saved layout %q", m.layoutName)
	return m.infoStatus("Saved layout %q", m.layoutName)
}

// reloadLayout replaces the tree with the stored dump. A failed restore
// puts the previous tree back.
func (m *Model) reloadLayout() tea.Cmd {
	if m.store == nil || m.reg == nil {
		return m.errorStatus("No layout store configured")
	}
	d, err := m.store.Load(m.layoutName)
	if err != nil {
		return m.errorStatus("Reload failed: %v", err)
	}
	rd, ok := d.(*layout.RootDump)
	if !ok {
		return m.errorStatus("Stored layout %q has no root", m.layoutName)
	}

	previous, _ := m.root.Persist().(*layout.RootDump)
	if err := m.root.Restore(rd, m.reg.Resolve); err != nil {
		logging.Error(subsystem, err, "Failed to restore layout %q", m.layoutName)
		if previous != nil {
			if rerr := m.root.Restore(previous, m.reg.Resolve); rerr != nil {
				logging.Error(subsystem, rerr, "Failed to put back the previous layout")
			}
		}
		m.resize()
		m.ensureFocus()
		return m.errorStatus("Reload failed: %v", err)
	}
	m.resize()
	m.focused = ""
	m.ensureFocus()
	logging.Info(subsystem, "Reloaded layout %q", m.layoutName)
	return m.infoStatus("Reloaded layout %q", m.layoutName)
}

func (m *Model) yankDump() tea.Cmd {
	data, err := layout.MarshalDumpIndent(m.root.Persist())
	if err != nil {
		return m.errorStatus("Encoding the layout failed: %v", err)
	}
	if err := clipboardWriteAll(string(data)); err != nil {
		return m.errorStatus("Copy layout dump failed: %v", err)
	}
	return m.infoStatus("Layout dump copied to clipboard")
}
