package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"aspcranes/models"
	"aspcranes/repository"
)

type CustomerHandler struct {
	Repo repository.CustomerRepository
}

// CreateCustomer handler
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(customer.Name) == "" {
		http.Error(w, "customer name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(customer.Phone) == "" {
		http.Error(w, "customer phone is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateCustomer(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(customer)
}

// GetAllCustomers handler
func (h *CustomerHandler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetCustomers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Customer{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetCustomerByID handler
func (h *CustomerHandler) GetCustomerByID(w http.ResponseWriter, r *http.Request, id string) {
	customer, err := h.Repo.GetCustomerByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if customer == nil {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(customer)
}

// UpdateCustomer handler
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request, id string) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	customer.ID = id

	if err := h.Repo.UpdateCustomer(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing customer id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteCustomer(id); err != nil {
		http.Error(w, "failed to delete customer: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"message":"Customer deleted successfully"}`))
}
