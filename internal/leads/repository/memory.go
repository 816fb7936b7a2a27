package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dentalsite/backend/internal/leads"
)

// MemoryRepo keeps leads in memory with the same ordering semantics as the
// Mongo repository (created_at descending); used in unit tests.
type MemoryRepo struct {
	mu           sync.RWMutex
	contacts     []*leads.ContactMessage
	appointments []*leads.AppointmentRequest
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) InsertContact(ctx context.Context, msg *leads.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *msg
	m.contacts = append(m.contacts, &cp)
	return nil
}

func (m *MemoryRepo) ListContacts(ctx context.Context, limit int64) ([]*leads.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*leads.ContactMessage, len(m.contacts))
	for i, msg := range m.contacts {
		cp := *msg
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRepo) InsertAppointment(ctx context.Context, req *leads.AppointmentRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *req
	m.appointments = append(m.appointments, &cp)
	return nil
}

func (m *MemoryRepo) ListAppointments(ctx context.Context, limit int64) ([]*leads.AppointmentRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*leads.AppointmentRequest, len(m.appointments))
	for i, req := range m.appointments {
		cp := *req
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ContactCount reports how many contact messages are stored; used by tests to
// assert that rejected requests persist nothing.
func (m *MemoryRepo) ContactCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contacts)
}
