package service

import (
	"context"
	"testing"

	"github.com/dentalsite/backend/internal/leads"
	"github.com/dentalsite/backend/internal/leads/repository"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateContactAssignsIdentity(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	msg, err := svc.CreateContact(ctx, &leads.ContactMessageCreate{
		FullName: "Jean Dupont",
		Email:    "jean@example.com",
		Phone:    "0561000000",
		Message:  "Bonjour",
		Consent:  boolPtr(false),
	})
	require.NoError(t, err)
	require.NotEmpty(t, msg.ID)
	require.False(t, msg.CreatedAt.IsZero())
	// consent is recorded as submitted, even when false
	require.False(t, msg.Consent)
}

func TestCreateAppointmentNormalizesDays(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, &leads.AppointmentRequestCreate{
		FullName: "Marie Martin",
		Phone:    "0561000001",
		Reason:   "Détartrage",
		Consent:  boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, appt.PreferredDays)
	require.Empty(t, appt.PreferredDays)
	require.Nil(t, appt.Email)

	withDays, err := svc.CreateAppointment(ctx, &leads.AppointmentRequestCreate{
		FullName:      "Marie Martin",
		Phone:         "0561000001",
		Reason:        "Contrôle",
		PreferredDays: []string{"mercredi", "lundi"},
		Consent:       boolPtr(true),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"mercredi", "lundi"}, withDays.PreferredDays)
}

func TestListContactsPassesLimitThrough(t *testing.T) {
	repo := repository.NewMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateContact(ctx, &leads.ContactMessageCreate{
			FullName: "P",
			Email:    "p@example.com",
			Phone:    "0",
			Message:  "m",
			Consent:  boolPtr(true),
		})
		require.NoError(t, err)
	}

	list, err := svc.ListContacts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
