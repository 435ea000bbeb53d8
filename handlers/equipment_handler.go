package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"aspcranes/models"
	"aspcranes/repository"
)

type EquipmentHandler struct {
	Repo repository.EquipmentRepository
}

// CreateEquipment handler
func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var equipment models.Equipment
	if err := json.NewDecoder(r.Body).Decode(&equipment); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(equipment.Name) == "" {
		http.Error(w, "equipment name is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateEquipment(&equipment); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(equipment)
}

// GetAllEquipment handler
func (h *EquipmentHandler) GetAllEquipment(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetEquipment(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Equipment{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetEquipmentByID handler
func (h *EquipmentHandler) GetEquipmentByID(w http.ResponseWriter, r *http.Request, id string) {
	equipment, err := h.Repo.GetEquipmentByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if equipment == nil {
		http.Error(w, "Equipment not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(equipment)
}

// UpdateEquipment handler
func (h *EquipmentHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request, id string) {
	var equipment models.Equipment
	if err := json.NewDecoder(r.Body).Decode(&equipment); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	equipment.ID = id

	if err := h.Repo.UpdateEquipment(&equipment); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(equipment)
}
