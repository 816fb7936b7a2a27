package service

import (
	"context"
	"errors"
	"time"

	"github.com/dentalsite/backend/internal/content"
	"github.com/dentalsite/backend/internal/content/repository"
	"github.com/dentalsite/backend/pkg/logger"
	"github.com/dentalsite/backend/pkg/metrics"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	Get(ctx context.Context) (*content.SiteContentDoc, error)
	Upsert(ctx context.Context, doc *content.SiteContentDoc) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the singleton content document, creating it from the default
// tree on first read. Two racing first-reads both write through the keyed
// upsert and converge to one document; only the last updated_at survives.
func (s *Service) Get(ctx context.Context) (*content.SiteContentDoc, error) {
	doc, err := s.repo.Get(ctx)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	doc = &content.SiteContentDoc{
		Key:       content.DefaultKey,
		Content:   content.DefaultContent(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return nil, err
	}
	metrics.ContentBootstraps.Inc()
	logger.Infof("site content bootstrapped from default template")
	return doc, nil
}

// Update replaces the stored content wholesale and refreshes updated_at.
// Last writer wins; the first update also creates the document.
func (s *Service) Update(ctx context.Context, c map[string]interface{}) (*content.SiteContentDoc, error) {
	doc := &content.SiteContentDoc{
		Key:       content.DefaultKey,
		Content:   c,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return nil, err
	}
	metrics.ContentWrites.Inc()
	return doc, nil
}
