package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"aspcranes/models"
	"aspcranes/pricing"
	"aspcranes/repository"

	"go.uber.org/zap"
)

type QuotationHandler struct {
	Repo     repository.QuotationRepository
	DealRepo repository.DealRepository
	Logger   *zap.Logger
}

// CreateQuotation computes the rent server side, persists the quotation and
// pushes the total into the linked deal. The deal sync must never fail the
// creation, the quotation is already stored by then.
func (h *QuotationHandler) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var q models.Quotation
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(q.CustomerName) == "" {
		http.Error(w, "customer name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(q.OrderType) == "" {
		http.Error(w, "order type is required", http.StatusBadRequest)
		return
	}

	// Whatever total the client sent is ignored.
	q.TotalRent = pricing.TotalRent(pricing.InputFrom(&q))

	if err := h.Repo.CreateQuotation(&q); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if q.LeadID != "" {
		if err := h.DealRepo.UpdateDealValueByLead(q.LeadID, q.TotalRent); err != nil {
			h.Logger.Error("deal value sync failed",
				zap.String("quotationId", q.ID),
				zap.String("leadId", q.LeadID),
				zap.Error(err))
		}
	}

	q.Normalize()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(q)
}

// GetAllQuotations serves the list views. leadId and customerId narrow the
// result to one lead or one customer.
func (h *QuotationHandler) GetAllQuotations(w http.ResponseWriter, r *http.Request) {
	var (
		list []*models.Quotation
		err  error
	)
	switch {
	case r.URL.Query().Get("leadId") != "":
		list, err = h.Repo.GetQuotationsByLead(r.URL.Query().Get("leadId"))
	case r.URL.Query().Get("customerId") != "":
		list, err = h.Repo.GetQuotationsByCustomer(r.URL.Query().Get("customerId"))
	default:
		list, err = h.Repo.GetQuotations()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Quotation{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetQuotationByID handler
func (h *QuotationHandler) GetQuotationByID(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.Repo.GetQuotationByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if q == nil {
		http.Error(w, "Quotation not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(q)
}

// UpdateQuotationStatus handler
func (h *QuotationHandler) UpdateQuotationStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateQuotationStatus(id, body.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"success":true,"message":"Quotation status updated"}`))
}

func (h *QuotationHandler) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing quotation id", http.StatusBadRequest)
		return
	}

	q, err := h.Repo.GetQuotationByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Repo.DeleteQuotation(id); err != nil {
		http.Error(w, "failed to delete quotation: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// The stored PDF is cleanup, losing it never blocks the delete.
	if q != nil && q.PDFURL != nil {
		if err := deletePDFObject(*q.PDFURL); err != nil {
			h.Logger.Warn("stored pdf cleanup failed",
				zap.String("quotationId", id),
				zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"message":"Quotation deleted successfully"}`))
}
