package store

// Memory is an in-memory Store for ephemeral sessions and tests.
// FailWrites simulates exhausted storage: writes are dropped and report
// failure, the way a browser behaves when its quota is exceeded.
type Memory struct {
	values     map[string]string
	FailWrites bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Read(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Write(key, value string) bool {
	if m.FailWrites {
		return false
	}
	m.values[key] = value
	return true
}

func (m *Memory) Remove(key string) {
	delete(m.values, key)
}
