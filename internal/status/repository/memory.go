package repository

import (
	"context"
	"sync"

	"github.com/dentalsite/backend/internal/status"
)

// MemoryRepo keeps status checks in insertion order; used in unit tests and
// when running without a database.
type MemoryRepo struct {
	mu    sync.RWMutex
	store []*status.StatusCheck
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(ctx context.Context, sc *status.StatusCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sc
	m.store = append(m.store, &cp)
	return nil
}

func (m *MemoryRepo) List(ctx context.Context, limit int64) ([]*status.StatusCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := int64(len(m.store))
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*status.StatusCheck, 0, n)
	for _, sc := range m.store[:n] {
		cp := *sc
		out = append(out, &cp)
	}
	return out, nil
}
