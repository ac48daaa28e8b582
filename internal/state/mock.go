// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	prefs  map[string]string
	getErr error
	setErr error
	sets   int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{prefs: make(map[string]string)}
}

func (m *Mock) GetPreference(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.prefs[key]
	return v, ok, nil
}

func (m *Mock) SetPreference(key, value string) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.prefs[key] = value
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) Preference(key string) string { return m.prefs[key] }

func (m *Mock) SetGetError(err error) { m.getErr = err }

func (m *Mock) SetSetError(err error) { m.setErr = err }

func (m *Mock) SetCalls() int { return m.sets }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
