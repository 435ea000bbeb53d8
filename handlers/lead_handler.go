package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aspcranes/models"
	"aspcranes/repository"
)

type LeadHandler struct {
	Repo repository.LeadRepository
}

// CreateLead handler
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(lead.CustomerName) == "" {
		http.Error(w, "customer name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(lead.Phone) == "" {
		http.Error(w, "phone is required", http.StatusBadRequest)
		return
	}

	applyLeadDefaults(&lead)

	if err := h.Repo.CreateLead(&lead); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(lead)
}

// applyLeadDefaults fills what the sales flow expects on new leads. Rentals
// longer than five days get chased within two hours, everything else within
// a day.
func applyLeadDefaults(lead *models.Lead) {
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.Source == "" {
		lead.Source = "website"
	}
	if lead.Priority == "" {
		if lead.RentalDays > 5 {
			lead.Priority = models.LeadPriorityHigh
		} else {
			lead.Priority = models.LeadPriorityNormal
		}
	}
	if lead.FollowupDate.IsZero() {
		if lead.RentalDays > 5 {
			lead.FollowupDate = time.Now().UTC().Add(2 * time.Hour)
		} else {
			lead.FollowupDate = time.Now().UTC().Add(24 * time.Hour)
		}
	}
}

// GetAllLeads handler
func (h *LeadHandler) GetAllLeads(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			// Attempt to convert numeric values to int if possible
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.GetLeads(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Lead{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetLeadByID handler
func (h *LeadHandler) GetLeadByID(w http.ResponseWriter, r *http.Request, id string) {
	lead, err := h.Repo.GetLeadByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if lead == nil {
		http.Error(w, "Lead not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lead)
}

// UpdateLead handler
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request, id string) {
	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	lead.ID = id

	if err := h.Repo.UpdateLead(&lead); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lead)
}

// UpdateLeadStatus handler
func (h *LeadHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request, id string) {
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

	if err := h.Repo.UpdateLeadStatus(id, body.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"success":true,"message":"Lead status updated"}`))
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing lead id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteLead(id); err != nil {
		http.Error(w, "failed to delete lead: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"message":"Lead deleted successfully"}`))
}
