package service

import (
	"context"
	"time"

	"github.com/dentalsite/backend/internal/status"
	"github.com/google/uuid"
)

// listCap bounds GET /status; records beyond it are simply not returned.
const listCap = 1000

// Repository is the persistence surface the service needs.
type Repository interface {
	Insert(ctx context.Context, sc *status.StatusCheck) error
	List(ctx context.Context, limit int64) ([]*status.StatusCheck, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create assigns id and timestamp, persists the record and returns it.
func (s *Service) Create(ctx context.Context, clientName string) (*status.StatusCheck, error) {
	sc := &status.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// List returns stored checks in storage order, capped at 1000.
func (s *Service) List(ctx context.Context) ([]*status.StatusCheck, error) {
	return s.repo.List(ctx, listCap)
}
