package mocks

import "sync"

// MockClipboard implements card.Clipboard for testing
type MockClipboard struct {
	WriteTextFn func(text string) error

	mu     sync.Mutex
	writes []string
}

// WriteText implements the card.Clipboard interface
func (m *MockClipboard) WriteText(text string) error {
	m.mu.Lock()
	m.writes = append(m.writes, text)
	m.mu.Unlock()

	if m.WriteTextFn != nil {
		return m.WriteTextFn(text)
	}
	return nil
}

// Writes returns every text written, in call order
func (m *MockClipboard) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}
