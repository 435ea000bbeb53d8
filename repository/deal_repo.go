package repository

import "aspcranes/models"

type DealRepository interface {
	CreateDeal(deal *models.Deal) error
	GetDeals(filters map[string]interface{}) ([]*models.Deal, error)
	GetDealByLead(leadID string) (*models.Deal, error)
	// UpdateDealValueByLead overwrites the stored value of the deal linked
	// to a lead. A lead without a deal is a no-op, not an error.
	UpdateDealValueByLead(leadID string, value float64) error
}
