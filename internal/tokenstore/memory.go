package tokenstore

// Memory is an in-process Store used in tests and as a fallback when no
// OS credential manager is available.
type Memory struct {
	token string
	set   bool
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Set(token string) error {
	m.token = token
	m.set = true
	return nil
}

func (m *Memory) Get() (string, error) {
	if !m.set {
		return "", ErrNotFound
	}
	return m.token, nil
}

func (m *Memory) Delete() error {
	m.token = ""
	m.set = false
	return nil
}
