package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

type PostgresDealRepo struct {
	DB *sql.DB
}

func NewPostgresDealRepo(db *sql.DB) *PostgresDealRepo {
	return &PostgresDealRepo{DB: db}
}

var dealFilterColumns = map[string]string{
	"leadId":     "lead_id",
	"customerId": "customer_id",
	"stage":      "stage",
}

func (r *PostgresDealRepo) CreateDeal(deal *models.Deal) error {
	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = now
	}
	deal.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO deals (id, lead_id, customer_id, title, value, stage, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, deal.ID, deal.LeadID, deal.CustomerID, deal.Title, deal.Value, deal.Stage,
		deal.CreatedAt, deal.UpdatedAt)
	return err
}

func (r *PostgresDealRepo) GetDeals(filters map[string]interface{}) ([]*models.Deal, error) {
	query := `SELECT id, lead_id, customer_id, title, value, stage, created_at, updated_at FROM deals`
	args := []interface{}{}
	where := ""
	i := 1
	for key, val := range filters {
		col, ok := dealFilterColumns[key]
		if !ok {
			continue
		}
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf("%s=$%d", col, i)
		args = append(args, val)
		i++
	}
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Deal
	for rows.Next() {
		d := &models.Deal{}
		if err := rows.Scan(&d.ID, &d.LeadID, &d.CustomerID, &d.Title, &d.Value, &d.Stage,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresDealRepo) GetDealByLead(leadID string) (*models.Deal, error) {
	d := &models.Deal{}
	err := r.DB.QueryRow(`
		SELECT id, lead_id, customer_id, title, value, stage, created_at, updated_at
		FROM deals
		WHERE lead_id=$1
		ORDER BY created_at DESC
		LIMIT 1
	`, leadID).Scan(&d.ID, &d.LeadID, &d.CustomerID, &d.Title, &d.Value, &d.Stage,
		&d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *PostgresDealRepo) UpdateDealValueByLead(leadID string, value float64) error {
	_, err := r.DB.Exec(`UPDATE deals SET value=$1, updated_at=$2 WHERE lead_id=$3`,
		value, time.Now().UTC(), leadID)
	return err
}
