package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dentalsite/backend/internal/leads"
	"github.com/dentalsite/backend/internal/leads/repository"
	"github.com/dentalsite/backend/internal/leads/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestEngine() (*gin.Engine, *repository.MemoryRepo) {
	g := gin.New()
	repo := repository.NewMemoryRepo()
	RegisterRoutes(g.Group("/api"), service.NewService(repo))
	return g, repo
}

func postJSON(g *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestContactMessageEcho(t *testing.T) {
	g, _ := newTestEngine()

	w := postJSON(g, "/api/contact-messages", `{"fullname":"Jean Dupont","email":"jean@example.com","phone":"0561000000","message":"Bonjour","consent":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.Equal(t, "Jean Dupont", msg["fullname"])
	require.Equal(t, "jean@example.com", msg["email"])
	require.Equal(t, true, msg["consent"])
	require.NotEmpty(t, msg["id"])
	require.NotEmpty(t, msg["created_at"])
}

func TestContactMessageMissingConsent(t *testing.T) {
	g, repo := newTestEngine()

	w := postJSON(g, "/api/contact-messages", `{"fullname":"Jean","email":"j@example.com","phone":"0","message":"m"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "consent")
	// nothing persisted
	require.Zero(t, repo.ContactCount())
}

func TestContactMessageConsentFalseAccepted(t *testing.T) {
	g, _ := newTestEngine()

	w := postJSON(g, "/api/contact-messages", `{"fullname":"Jean","email":"j@example.com","phone":"0","message":"m","consent":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.Equal(t, false, msg["consent"])
}

func TestContactMessagesLimitBounds(t *testing.T) {
	g, _ := newTestEngine()

	for _, limit := range []string{"0", "101", "abc"} {
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact-messages?limit="+limit, nil))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "limit=%s", limit)
		require.Contains(t, w.Body.String(), "limit")
	}

	for _, limit := range []string{"1", "100", ""} {
		url := "/api/contact-messages"
		if limit != "" {
			url += "?limit=" + limit
		}
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusOK, w.Code, "limit=%s", limit)
	}
}

func TestContactMessagesDescendingOrder(t *testing.T) {
	g, repo := newTestEngine()

	// seed records with known timestamps through the repo
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.InsertContact(t.Context(), &leads.ContactMessage{
			ID:        fmt.Sprintf("m%d", i+1),
			FullName:  "P",
			Email:     "p@example.com",
			Phone:     "0",
			Message:   "m",
			Consent:   true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact-messages?limit=3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	require.Equal(t, "m3", list[0]["id"])
	require.Equal(t, "m2", list[1]["id"])
	require.Equal(t, "m1", list[2]["id"])
}

func TestAppointmentRequestFieldEcho(t *testing.T) {
	g, _ := newTestEngine()

	body := `{"fullname":"Marie Martin","email":"marie@example.com","phone":"0561000001","reason":"Douleur","preferred_days":["mercredi","lundi","vendredi"],"preferred_time":"matin","notes":"Patiente anxieuse","consent":true}`
	w := postJSON(g, "/api/appointment-requests", body)
	require.Equal(t, http.StatusOK, w.Code)

	var appt map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	require.Equal(t, "Marie Martin", appt["fullname"])
	require.Equal(t, "marie@example.com", appt["email"])
	require.Equal(t, "Douleur", appt["reason"])
	require.Equal(t, "matin", appt["preferred_time"])
	require.Equal(t, "Patiente anxieuse", appt["notes"])
	require.Equal(t, []interface{}{"mercredi", "lundi", "vendredi"}, appt["preferred_days"])
	require.NotEmpty(t, appt["id"])
	require.NotEmpty(t, appt["created_at"])
}

func TestAppointmentRequestOptionalFields(t *testing.T) {
	g, _ := newTestEngine()

	w := postJSON(g, "/api/appointment-requests", `{"fullname":"Marie","phone":"0561000001","reason":"Contrôle","consent":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var appt map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	require.Nil(t, appt["email"])
	require.Nil(t, appt["preferred_time"])
	require.Nil(t, appt["notes"])
	require.Equal(t, []interface{}{}, appt["preferred_days"])
}

func TestAppointmentRequestsLimitValidation(t *testing.T) {
	g, _ := newTestEngine()

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointment-requests?limit=101", nil))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointment-requests", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
