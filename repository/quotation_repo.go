package repository

import (
	"time"

	"aspcranes/models"
)

// QuotationRepository persists quotations. Every read accessor returns
// records already normalized, so legacy documents missing optional fields
// come back with their documented defaults on every path.
type QuotationRepository interface {
	CreateQuotation(quotation *models.Quotation) error
	GetQuotations() ([]*models.Quotation, error)
	GetQuotationByID(id string) (*models.Quotation, error)
	GetQuotationsByLead(leadID string) ([]*models.Quotation, error)
	GetQuotationsByCustomer(customerID string) ([]*models.Quotation, error)
	UpdateQuotationStatus(id, status string) error
	UpdatePDFInfo(id, url string, t time.Time) error
	DeleteQuotation(id string) error
}
