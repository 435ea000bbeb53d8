package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aspcranes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuotationHandler(deals *fakeDealRepo) (*QuotationHandler, *fakeQuotationRepo) {
	repo := &fakeQuotationRepo{}
	return &QuotationHandler{Repo: repo, DealRepo: deals, Logger: zap.NewNop()}, repo
}

// One machine at rate 1000 for one 8 hour day: working 8000, plus 5% usage
// and 5% low risk on the base rate = 8100.
const quotationBody = `{
	"customerName": "Sharma Constructions",
	"orderType": "micro",
	"numberOfDays": 1,
	"workingHours": 8,
	"totalRent": 999999,
	"selectedMachines": [{"name": "Pick & Carry", "baseRate": 1000, "quantity": 1}]
}`

func TestCreateQuotationNamesFirstMissingField(t *testing.T) {
	h, _ := newQuotationHandler(&fakeDealRepo{})

	rec := httptest.NewRecorder()
	h.CreateQuotation(rec, httptest.NewRequest(http.MethodPost, "/api/quotations",
		strings.NewReader(`{"orderType": "micro"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer name is required")

	rec = httptest.NewRecorder()
	h.CreateQuotation(rec, httptest.NewRequest(http.MethodPost, "/api/quotations",
		strings.NewReader(`{"customerName": "Sharma Constructions"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "order type is required")
}

func TestCreateQuotationIgnoresClientTotal(t *testing.T) {
	h, repo := newQuotationHandler(&fakeDealRepo{})

	rec := httptest.NewRecorder()
	h.CreateQuotation(rec, httptest.NewRequest(http.MethodPost, "/api/quotations",
		strings.NewReader(quotationBody)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Quotation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 8100.0, got.TotalRent)
	assert.Equal(t, models.QuotationStatusDraft, got.Status)
	assert.Equal(t, "Pick & Carry", got.EquipmentName)

	require.Len(t, repo.quotations, 1)
	assert.Equal(t, 8100.0, repo.quotations[0].TotalRent)
}

func TestCreateQuotationSyncsDealValue(t *testing.T) {
	deals := &fakeDealRepo{}
	h, _ := newQuotationHandler(deals)

	body := strings.Replace(quotationBody, `"customerName"`, `"leadId": "lead-77", "customerName"`, 1)
	rec := httptest.NewRecorder()
	h.CreateQuotation(rec, httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, deals.syncCalls)
	assert.Equal(t, "lead-77", deals.syncedLead)
	assert.Equal(t, 8100.0, deals.syncedValue)
}

func TestCreateQuotationWithoutLeadSkipsDealSync(t *testing.T) {
	deals := &fakeDealRepo{}
	h, _ := newQuotationHandler(deals)

	rec := httptest.NewRecorder()
	h.CreateQuotation(rec, httptest.NewRequest(http.MethodPost, "/api/quotations",
		strings.NewReader(quotationBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0, deals.syncCalls)
}

func TestCreateQuotationSurvivesDealSyncFailure(t *testing.T) {
	deals := &fakeDealRepo{syncErr: errors.New("deal store down")}
	h, repo := newQuotationHandler(deals)

	body := strings.Replace(quotationBody, `"customerName"`, `"leadId": "lead-77", "customerName"`, 1)
	rec := httptest.NewRecorder()
	h.CreateQuotation(rec, httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, repo.quotations, 1)
}

func TestGetAllQuotationsFiltersByLead(t *testing.T) {
	h, repo := newQuotationHandler(&fakeDealRepo{})
	repo.quotations = []*models.Quotation{
		{ID: "q-1", LeadID: "lead-1", CustomerName: "A"},
		{ID: "q-2", LeadID: "lead-2", CustomerName: "B"},
	}

	rec := httptest.NewRecorder()
	h.GetAllQuotations(rec, httptest.NewRequest(http.MethodGet, "/api/quotations?leadId=lead-2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*models.Quotation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "q-2", got[0].ID)
}

func TestGetQuotationByIDNotFound(t *testing.T) {
	h, _ := newQuotationHandler(&fakeDealRepo{})

	rec := httptest.NewRecorder()
	h.GetQuotationByID(rec, httptest.NewRequest(http.MethodGet, "/api/quotations/nope", nil), "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
