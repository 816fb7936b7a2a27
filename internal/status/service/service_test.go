package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dentalsite/backend/internal/status"
)

// fake repo for testing
type fakeRepo struct {
	inserted []*status.StatusCheck
	fail     bool
}

func (f *fakeRepo) Insert(ctx context.Context, sc *status.StatusCheck) error {
	if f.fail {
		return errors.New("db down")
	}
	f.inserted = append(f.inserted, sc)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, limit int64) ([]*status.StatusCheck, error) {
	if f.fail {
		return nil, errors.New("db down")
	}
	if limit < int64(len(f.inserted)) {
		return f.inserted[:limit], nil
	}
	return f.inserted, nil
}

func TestCreateAssignsIdentity(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	sc, err := svc.Create(context.Background(), "monitor")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sc.ID == "" || sc.Timestamp.IsZero() {
		t.Fatalf("missing generated identity: %+v", sc)
	}
	if sc.ClientName != "monitor" {
		t.Fatalf("unexpected client name: %s", sc.ClientName)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one persisted record, got %d", len(repo.inserted))
	}
}

func TestCreatePropagatesRepoError(t *testing.T) {
	svc := NewService(&fakeRepo{fail: true})
	if _, err := svc.Create(context.Background(), "monitor"); err == nil {
		t.Fatal("expected error from failing repo")
	}
}

func TestListUsesCap(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), "m"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
}
