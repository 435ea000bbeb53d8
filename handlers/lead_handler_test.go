package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aspcranes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeadLongRentalIsChasedWithinTwoHours(t *testing.T) {
	repo := &fakeLeadRepo{}
	h := &LeadHandler{Repo: repo}

	body := `{"customerName": "Verma Infra", "phone": "9876543210", "rentalDays": 12}`
	rec := httptest.NewRecorder()
	h.CreateLead(rec, httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, repo.created)
	assert.Equal(t, models.LeadPriorityHigh, repo.created.Priority)
	assert.WithinDuration(t, time.Now().UTC().Add(2*time.Hour), repo.created.FollowupDate, time.Minute)
}

func TestCreateLeadShortRentalDefaults(t *testing.T) {
	repo := &fakeLeadRepo{}
	h := &LeadHandler{Repo: repo}

	body := `{"customerName": "Verma Infra", "phone": "9876543210", "rentalDays": 3}`
	rec := httptest.NewRecorder()
	h.CreateLead(rec, httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Lead
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, models.LeadStatusNew, got.Status)
	assert.Equal(t, "website", got.Source)
	assert.Equal(t, models.LeadPriorityNormal, got.Priority)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), got.FollowupDate, time.Minute)
}

func TestCreateLeadRequiresContactDetails(t *testing.T) {
	h := &LeadHandler{Repo: &fakeLeadRepo{}}

	rec := httptest.NewRecorder()
	h.CreateLead(rec, httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"phone": "9876543210"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer name is required")

	rec = httptest.NewRecorder()
	h.CreateLead(rec, httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"customerName": "Verma Infra"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone is required")
}

func TestCreateLeadKeepsProvidedPriority(t *testing.T) {
	repo := &fakeLeadRepo{}
	h := &LeadHandler{Repo: repo}

	body := `{"customerName": "Verma Infra", "phone": "9876543210", "rentalDays": 12, "priority": "normal"}`
	rec := httptest.NewRecorder()
	h.CreateLead(rec, httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.LeadPriorityNormal, repo.created.Priority)
}
