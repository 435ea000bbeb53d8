package repository

import "aspcranes/models"

type LeadRepository interface {
	CreateLead(lead *models.Lead) error
	GetLeads(filters map[string]interface{}) ([]*models.Lead, error)
	GetLeadByID(id string) (*models.Lead, error)
	UpdateLead(lead *models.Lead) error
	UpdateLeadStatus(id, status string) error
	DeleteLead(id string) error
}
