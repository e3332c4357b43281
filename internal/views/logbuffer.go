package views

import "sync"

// LogBuffer keeps the most recent lines appended to it. It is safe for
// concurrent use; the TUI appends while the MCP server may read.
type LogBuffer struct {
	mu    sync.Mutex
	lines []string
	limit int
}

// NewLogBuffer returns a buffer retaining up to limit lines.
func NewLogBuffer(limit int) *LogBuffer {
	return &LogBuffer{limit: max(limit, 1)}
}

// Append adds a line, dropping the oldest one when full.
func (b *LogBuffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
	if over := len(b.lines) - b.limit; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}

// Tail returns a copy of the last n lines.
func (b *LogBuffer) Tail(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n <= 0 {
		return nil
	}
	start := max(len(b.lines)-n, 0)
	return append([]string(nil), b.lines[start:]...)
}

// Len returns the number of retained lines.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}
