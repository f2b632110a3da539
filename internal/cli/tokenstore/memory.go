package tokenstore

import "sync"

// Memory is an in-memory Store. It backs tests and any environment without a
// usable OS keyring.
type Memory struct {
	mu     sync.Mutex
	tokens map[Kind]string
}

func NewMemory() *Memory {
	return &Memory{tokens: make(map[Kind]string)}
}

func (m *Memory) Get(kind Kind) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.tokens[kind]
	if !ok || !Usable(token) {
		return "", ErrNoToken
	}
	return token, nil
}

func (m *Memory) SetTokens(accessToken, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[Access] = accessToken
	m.tokens[Refresh] = refreshToken
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, Access)
	delete(m.tokens, Refresh)
	return nil
}
