package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

type PostgresProfileRepo struct {
	DB *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{DB: db}
}

// SaveProfile inserts or updates the company letterhead details
func (r *PostgresProfileRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	// Convert phone slice to JSON manually
	phonesJSON, err := json.Marshal(profile.Phones)
	if err != nil {
		return err
	}

	// If ID is passed → UPDATE, else INSERT
	if profile.ID != "" {
		_, err = r.DB.Exec(`
			UPDATE company_profile
			SET company_name=$1, gstin=$2, address=$3, city=$4, state=$5,
				pincode=$6, phones=$7, footnote=$8, created_at=$9
			WHERE id=$10
		`, profile.CompanyName, profile.GSTIN, profile.Address, profile.City, profile.State,
			profile.Pincode, phonesJSON, profile.Footnote, profile.CreatedAt, profile.ID)
	} else {
		profile.ID = uuid.NewString()
		_, err = r.DB.Exec(`
			INSERT INTO company_profile
			(id, company_name, gstin, address, city, state, pincode, phones, footnote, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, profile.ID, profile.CompanyName, profile.GSTIN, profile.Address, profile.City, profile.State,
			profile.Pincode, phonesJSON, profile.Footnote, profile.CreatedAt)
	}

	return err
}

// GetProfile fetches the latest company profile
func (r *PostgresProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	profile := &models.CompanyProfile{}
	var phonesJSON []byte

	err := r.DB.QueryRow(`
		SELECT id, company_name, address, city, state, pincode, gstin, footnote, phones, created_at
		FROM company_profile
		ORDER BY created_at DESC LIMIT 1
	`).Scan(&profile.ID, &profile.CompanyName, &profile.Address, &profile.City, &profile.State,
		&profile.Pincode, &profile.GSTIN, &profile.Footnote, &phonesJSON, &profile.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	// Decode JSONB to Go slice
	if len(phonesJSON) > 0 {
		if err := json.Unmarshal(phonesJSON, &profile.Phones); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
