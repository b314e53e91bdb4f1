package session

// MemoryStore keeps the session in process memory only. Used by tests and
// one-shot invocations that must not touch the state database.
type MemoryStore struct {
	current Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Current() Session {
	return m.current
}

func (m *MemoryStore) Set(s Session) error {
	m.current = s
	return nil
}

func (m *MemoryStore) Clear() error {
	m.current = Session{}
	return nil
}
