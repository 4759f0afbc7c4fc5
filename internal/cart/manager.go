package cart

import "sync"

// Manager hands out one cart instance per cart id. Each session owns a
// single cart; the manager just keeps the instance alive between requests
// and lazily restores it from disk on first use.
type Manager struct {
	mu    sync.Mutex
	dir   string
	carts map[string]*Cart
}

func NewManager(dir string) *Manager {
	return &Manager{
		dir:   dir,
		carts: make(map[string]*Cart),
	}
}

// Get returns the cart for id, loading it from its file store the first
// time the id is seen.
func (m *Manager) Get(id string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.carts[id]; ok {
		return c
	}

	c := New(NewFileStore(m.dir, id))
	c.Load()
	m.carts[id] = c
	return c
}
