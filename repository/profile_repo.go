package repository

import (
	"aspcranes/models"
)

type ProfileRepository interface {
	SaveProfile(profile *models.CompanyProfile) error
	GetProfile() (*models.CompanyProfile, error)
}
