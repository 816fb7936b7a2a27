package repository

import (
	"context"
	"sync"

	"github.com/dentalsite/backend/internal/content"
)

// MemoryRepo holds at most one content document; used in unit tests.
type MemoryRepo struct {
	mu  sync.RWMutex
	doc *content.SiteContentDoc
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Get(ctx context.Context) (*content.SiteContentDoc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.doc == nil {
		return nil, ErrNotFound
	}
	cp := *m.doc
	return &cp, nil
}

func (m *MemoryRepo) Upsert(ctx context.Context, doc *content.SiteContentDoc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *doc
	m.doc = &cp
	return nil
}
