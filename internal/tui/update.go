package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the log listener and the clock.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.listenForLogs(), tick())
}

// Update applies msg to the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case NewLogEntryMsg:
		if m.reg != nil {
			m.reg.Log().Append(msg.Entry.String())
		}
		return m, m.listenForLogs()

	case ClearStatusBarMsg:
		m.statusMessage = ""
		m.statusType = StatusBarInfo
		m.statusClearCancel = nil
		return m, nil

	case tickMsg:
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.showHelp {
			m.help.ShowAll = !m.help.ShowAll
		} else {
			m.showHelp, m.help.ShowAll = true, true
		}
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.FocusNext):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Maximize):
		return m, m.toggleMaximize()
	case key.Matches(msg, m.keys.Close):
		return m, m.closeFocused()
	case key.Matches(msg, m.keys.SplitRight):
		return m, m.splitFocused(false)
	case key.Matches(msg, m.keys.SplitDown):
		return m, m.splitFocused(true)
	case key.Matches(msg, m.keys.DividerGrow):
		return m, m.moveDivider(dividerStep)
	case key.Matches(msg, m.keys.DividerDrop):
		return m, m.moveDivider(-dividerStep)
	case key.Matches(msg, m.keys.NextTab):
		return m, m.nextTab()
	case key.Matches(msg, m.keys.Save):
		return m, m.saveLayout()
	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadLayout()
	case key.Matches(msg, m.keys.Yank):
		return m, m.yankDump()
	}
	return m, nil
}
