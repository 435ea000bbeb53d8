package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

type PostgresLeadRepo struct {
	DB *sql.DB
}

func NewPostgresLeadRepo(db *sql.DB) *PostgresLeadRepo {
	return &PostgresLeadRepo{DB: db}
}

// leadFilterColumns maps the filter keys the API accepts onto real columns.
// Unknown keys are ignored instead of being interpolated into SQL.
var leadFilterColumns = map[string]string{
	"status":     "status",
	"source":     "source",
	"priority":   "priority",
	"assignedTo": "assigned_to",
	"customerId": "customer_id",
}

const leadColumns = `id, customer_id, customer_name, company_name, email, phone, service_needed,
	site_location, start_date, rental_days, shift_timing, status, source, priority,
	assigned_to, notes, followup_date, created_at, updated_at`

func scanLead(row rowScanner) (*models.Lead, error) {
	l := &models.Lead{}
	err := row.Scan(&l.ID, &l.CustomerID, &l.CustomerName, &l.CompanyName, &l.Email, &l.Phone,
		&l.ServiceNeeded, &l.SiteLocation, &l.StartDate, &l.RentalDays, &l.ShiftTiming,
		&l.Status, &l.Source, &l.Priority, &l.AssignedTo, &l.Notes, &l.FollowupDate,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *PostgresLeadRepo) CreateLead(lead *models.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now
	if lead.FollowupDate.IsZero() {
		lead.FollowupDate = now.Add(24 * time.Hour)
	}

	_, err := r.DB.Exec(`
		INSERT INTO leads (`+leadColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`, lead.ID, lead.CustomerID, lead.CustomerName, lead.CompanyName, lead.Email, lead.Phone,
		lead.ServiceNeeded, lead.SiteLocation, lead.StartDate, lead.RentalDays, lead.ShiftTiming,
		lead.Status, lead.Source, lead.Priority, lead.AssignedTo, lead.Notes, lead.FollowupDate,
		lead.CreatedAt, lead.UpdatedAt)
	return err
}

func (r *PostgresLeadRepo) GetLeads(filters map[string]interface{}) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	args := []interface{}{}
	where := ""
	i := 1
	for key, val := range filters {
		col, ok := leadFilterColumns[key]
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

	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresLeadRepo) GetLeadByID(id string) (*models.Lead, error) {
	row := r.DB.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id=$1`, id)
	l, err := scanLead(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (r *PostgresLeadRepo) UpdateLead(lead *models.Lead) error {
	lead.UpdatedAt = time.Now().UTC()
	_, err := r.DB.Exec(`
		UPDATE leads
		SET customer_id=$1, customer_name=$2, company_name=$3, email=$4, phone=$5,
			service_needed=$6, site_location=$7, start_date=$8, rental_days=$9,
			shift_timing=$10, status=$11, source=$12, priority=$13, assigned_to=$14,
			notes=$15, followup_date=$16, updated_at=$17
		WHERE id=$18
	`, lead.CustomerID, lead.CustomerName, lead.CompanyName, lead.Email, lead.Phone,
		lead.ServiceNeeded, lead.SiteLocation, lead.StartDate, lead.RentalDays,
		lead.ShiftTiming, lead.Status, lead.Source, lead.Priority, lead.AssignedTo,
		lead.Notes, lead.FollowupDate, lead.UpdatedAt, lead.ID)
	return err
}

func (r *PostgresLeadRepo) UpdateLeadStatus(id, status string) error {
	_, err := r.DB.Exec(`UPDATE leads SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now().UTC(), id)
	return err
}

func (r *PostgresLeadRepo) DeleteLead(id string) error {
	_, err := r.DB.Exec(`DELETE FROM leads WHERE id=$1`, id)
	return err
}
