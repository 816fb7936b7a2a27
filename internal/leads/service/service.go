package service

import (
	"context"
	"time"

	"github.com/dentalsite/backend/internal/leads"
	"github.com/dentalsite/backend/pkg/metrics"
	"github.com/google/uuid"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	InsertContact(ctx context.Context, msg *leads.ContactMessage) error
	ListContacts(ctx context.Context, limit int64) ([]*leads.ContactMessage, error)
	InsertAppointment(ctx context.Context, req *leads.AppointmentRequest) error
	ListAppointments(ctx context.Context, limit int64) ([]*leads.AppointmentRequest, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateContact assigns id and created_at, persists the record and returns it.
func (s *Service) CreateContact(ctx context.Context, in *leads.ContactMessageCreate) (*leads.ContactMessage, error) {
	msg := &leads.ContactMessage{
		ID:        uuid.NewString(),
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Consent:   *in.Consent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertContact(ctx, msg); err != nil {
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues("contact").Inc()
	return msg, nil
}

func (s *Service) ListContacts(ctx context.Context, limit int64) ([]*leads.ContactMessage, error) {
	return s.repo.ListContacts(ctx, limit)
}

// CreateAppointment assigns id and created_at, normalizes preferred_days to a
// non-nil slice and persists the record.
func (s *Service) CreateAppointment(ctx context.Context, in *leads.AppointmentRequestCreate) (*leads.AppointmentRequest, error) {
	days := in.PreferredDays
	if days == nil {
		days = []string{}
	}
	req := &leads.AppointmentRequest{
		ID:            uuid.NewString(),
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Reason:        in.Reason,
		PreferredDays: days,
		PreferredTime: in.PreferredTime,
		Notes:         in.Notes,
		Consent:       *in.Consent,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.InsertAppointment(ctx, req); err != nil {
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues("appointment").Inc()
	return req, nil
}

func (s *Service) ListAppointments(ctx context.Context, limit int64) ([]*leads.AppointmentRequest, error) {
	return s.repo.ListAppointments(ctx, limit)
}
