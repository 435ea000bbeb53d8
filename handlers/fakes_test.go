package handlers

import (
	"fmt"
	"time"

	"aspcranes/models"
)

// In-memory repositories for handler tests. Only the behavior the handlers
// rely on is simulated.

type fakeQuotationRepo struct {
	quotations []*models.Quotation
	createErr  error
}

func (f *fakeQuotationRepo) CreateQuotation(q *models.Quotation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if q.ID == "" {
		q.ID = fmt.Sprintf("q-%d", len(f.quotations)+1)
	}
	if q.Status == "" {
		q.Status = models.QuotationStatusDraft
	}
	if q.Version == 0 {
		q.Version = 1
	}
	q.CreatedAt = time.Now().UTC()
	q.UpdatedAt = q.CreatedAt
	f.quotations = append(f.quotations, q)
	return nil
}

func (f *fakeQuotationRepo) GetQuotations() ([]*models.Quotation, error) {
	return f.quotations, nil
}

func (f *fakeQuotationRepo) GetQuotationByID(id string) (*models.Quotation, error) {
	for _, q := range f.quotations {
		if q.ID == id {
			q.Normalize()
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuotationRepo) GetQuotationsByLead(leadID string) ([]*models.Quotation, error) {
	var out []*models.Quotation
	for _, q := range f.quotations {
		if q.LeadID == leadID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuotationRepo) GetQuotationsByCustomer(customerID string) ([]*models.Quotation, error) {
	var out []*models.Quotation
	for _, q := range f.quotations {
		if q.CustomerID == customerID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuotationRepo) UpdateQuotationStatus(id, status string) error {
	for _, q := range f.quotations {
		if q.ID == id {
			q.Status = status
		}
	}
	return nil
}

func (f *fakeQuotationRepo) UpdatePDFInfo(id, url string, createdAt time.Time) error {
	for _, q := range f.quotations {
		if q.ID == id {
			q.PDFURL = &url
			q.PDFCreatedAt = &createdAt
		}
	}
	return nil
}

func (f *fakeQuotationRepo) DeleteQuotation(id string) error {
	for i, q := range f.quotations {
		if q.ID == id {
			f.quotations = append(f.quotations[:i], f.quotations[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeDealRepo struct {
	syncedLead  string
	syncedValue float64
	syncCalls   int
	syncErr     error
}

func (f *fakeDealRepo) CreateDeal(deal *models.Deal) error { return nil }

func (f *fakeDealRepo) GetDeals(filters map[string]interface{}) ([]*models.Deal, error) {
	return nil, nil
}

func (f *fakeDealRepo) GetDealByLead(leadID string) (*models.Deal, error) { return nil, nil }

func (f *fakeDealRepo) UpdateDealValueByLead(leadID string, value float64) error {
	f.syncCalls++
	if f.syncErr != nil {
		return f.syncErr
	}
	f.syncedLead = leadID
	f.syncedValue = value
	return nil
}

type fakeLeadRepo struct {
	created *models.Lead
}

func (f *fakeLeadRepo) CreateLead(lead *models.Lead) error {
	lead.ID = "lead-1"
	f.created = lead
	return nil
}

func (f *fakeLeadRepo) GetLeads(filters map[string]interface{}) ([]*models.Lead, error) {
	return nil, nil
}

func (f *fakeLeadRepo) GetLeadByID(id string) (*models.Lead, error) { return f.created, nil }

func (f *fakeLeadRepo) UpdateLead(lead *models.Lead) error { return nil }

func (f *fakeLeadRepo) UpdateLeadStatus(id, status string) error { return nil }

func (f *fakeLeadRepo) DeleteLead(id string) error { return nil }

type fakeChatRepo struct {
	messages []*models.ChatMessage
	saveErr  error
}

func (f *fakeChatRepo) SaveMessage(msg *models.ChatMessage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeChatRepo) GetHistory(userID, sessionID string, limit int) ([]*models.ChatMessage, error) {
	var out []*models.ChatMessage
	for _, m := range f.messages {
		if m.UserID != userID {
			continue
		}
		if sessionID != "" && m.SessionID != sessionID {
			continue
		}
		out = append(out, m)
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
