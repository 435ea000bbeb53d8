package repository

import (
	"aspcranes/models"
)

// PDFRepository provides methods to fetch data for PDF generation
type PDFRepository struct {
	QuotationRepo QuotationRepository
	ProfileRepo   ProfileRepository
}

// NewPDFRepository initializes a PDF repository
func NewPDFRepository(quotationRepo QuotationRepository, profileRepo ProfileRepository) *PDFRepository {
	return &PDFRepository{
		QuotationRepo: quotationRepo,
		ProfileRepo:   profileRepo,
	}
}

// GetQuotationForPDF fetches a single quotation by ID for PDF
func (r *PDFRepository) GetQuotationForPDF(id string) (*models.Quotation, error) {
	return r.QuotationRepo.GetQuotationByID(id)
}

// GetProfileForPDF fetches the latest company profile
func (r *PDFRepository) GetProfileForPDF() (*models.CompanyProfile, error) {
	return r.ProfileRepo.GetProfile()
}
