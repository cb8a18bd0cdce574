package engine

import (
	"fmt"
	"sync"
)

const messageLogCapacity = 64

// MessageLog is the player-facing feedback channel: resolution systems
// push lines ("You caught a fish!"), the UI collaborator reads the tail.
// Bounded; old lines fall off the front.
type MessageLog struct {
	mu    sync.Mutex
	lines []string
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{lines: make([]string, 0, messageLogCapacity)}
}

// Log appends a formatted line.
func (m *MessageLog) Log(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = append(m.lines, fmt.Sprintf(format, args...))
	if len(m.lines) > messageLogCapacity {
		m.lines = m.lines[len(m.lines)-messageLogCapacity:]
	}
}

// Recent returns up to n of the newest lines, oldest first.
func (m *MessageLog) Recent(n int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > len(m.lines) {
		n = len(m.lines)
	}
	out := make([]string, n)
	copy(out, m.lines[len(m.lines)-n:])
	return out
}

// Len returns the number of retained lines.
func (m *MessageLog) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}
