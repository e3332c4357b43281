package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panectl/pkg/logging"
)

// NewLogEntryMsg carries a log entry emitted while the TUI runs.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar message.
type ClearStatusBarMsg struct{}

// tickMsg repaints time dependent views.
type tickMsg time.Time

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.statusMessage = message
	m.statusType = msgType

	if m.statusClearCancel != nil {
		close(m.statusClearCancel)
	}

	m.statusClearCancel = make(chan struct{})
	captured := m.statusClearCancel

	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// listenForLogs waits for the next log entry.
func (m *Model) listenForLogs() tea.Cmd {
	if m.logChannel == nil {
		return nil
	}
	ch := m.logChannel
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

func tick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
