package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"aspcranes/models"
	"aspcranes/repository"
)

type DealHandler struct {
	Repo repository.DealRepository
}

// CreateDeal handler
func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var deal models.Deal
	if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(deal.Title) == "" {
		http.Error(w, "deal title is required", http.StatusBadRequest)
		return
	}
	if deal.Stage == "" {
		deal.Stage = "qualification"
	}

	if err := h.Repo.CreateDeal(&deal); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(deal)
}

// GetAllDeals handler
func (h *DealHandler) GetAllDeals(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetDeals(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Deal{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
