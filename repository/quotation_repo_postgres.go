package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

// rowScanner lets the scan helpers work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

type PostgresQuotationRepo struct {
	DB *sql.DB
}

func NewPostgresQuotationRepo(db *sql.DB) *PostgresQuotationRepo {
	return &PostgresQuotationRepo{DB: db}
}

const quotationColumns = `id, lead_id, customer_id, customer_name, customer_contact, order_type,
	number_of_days, working_hours, shift, usage, risk_factor, site_distance, mob_demob,
	mob_relaxation, food_resources, accom_resources, extra_charge, include_gst,
	selected_equipment, selected_machines, total_rent, version, status,
	pdf_url, pdf_created_at, created_at, updated_at`

func scanQuotation(row rowScanner) (*models.Quotation, error) {
	q := &models.Quotation{}
	var contact, equip, machines []byte
	err := row.Scan(&q.ID, &q.LeadID, &q.CustomerID, &q.CustomerName, &contact, &q.OrderType,
		&q.NumberOfDays, &q.WorkingHours, &q.Shift, &q.Usage, &q.RiskFactor, &q.SiteDistance,
		&q.MobDemob, &q.MobRelaxation, &q.FoodResources, &q.AccomResources, &q.ExtraCharge,
		&q.IncludeGst, &equip, &machines, &q.TotalRent, &q.Version, &q.Status,
		&q.PDFURL, &q.PDFCreatedAt, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &q.CustomerContact); err != nil {
			return nil, err
		}
	}
	if len(equip) > 0 {
		if err := json.Unmarshal(equip, &q.SelectedEquip); err != nil {
			return nil, err
		}
	}
	if len(machines) > 0 {
		if err := json.Unmarshal(machines, &q.SelectedMachines); err != nil {
			return nil, err
		}
	}
	// Old rows miss fields newer writers always set, backfill before returning.
	q.Normalize()
	return q, nil
}

func (r *PostgresQuotationRepo) CreateQuotation(q *models.Quotation) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = models.QuotationStatusDraft
	}
	if q.Version == 0 {
		q.Version = 1
	}
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	contact, err := json.Marshal(q.CustomerContact)
	if err != nil {
		return err
	}
	equip, err := json.Marshal(q.SelectedEquip)
	if err != nil {
		return err
	}
	machines, err := json.Marshal(q.SelectedMachines)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO quotations (`+quotationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)
	`, q.ID, q.LeadID, q.CustomerID, q.CustomerName, contact, q.OrderType,
		q.NumberOfDays, q.WorkingHours, q.Shift, q.Usage, q.RiskFactor, q.SiteDistance,
		q.MobDemob, q.MobRelaxation, q.FoodResources, q.AccomResources, q.ExtraCharge,
		q.IncludeGst, equip, machines, q.TotalRent, q.Version, q.Status,
		q.PDFURL, q.PDFCreatedAt, q.CreatedAt, q.UpdatedAt)
	return err
}

func (r *PostgresQuotationRepo) queryQuotations(query string, args ...interface{}) ([]*models.Quotation, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *PostgresQuotationRepo) GetQuotations() ([]*models.Quotation, error) {
	return r.queryQuotations(`SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at DESC`)
}

func (r *PostgresQuotationRepo) GetQuotationByID(id string) (*models.Quotation, error) {
	row := r.DB.QueryRow(`SELECT `+quotationColumns+` FROM quotations WHERE id=$1`, id)
	q, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return q, nil
}

func (r *PostgresQuotationRepo) GetQuotationsByLead(leadID string) ([]*models.Quotation, error) {
	return r.queryQuotations(`SELECT `+quotationColumns+` FROM quotations WHERE lead_id=$1 ORDER BY created_at DESC`, leadID)
}

func (r *PostgresQuotationRepo) GetQuotationsByCustomer(customerID string) ([]*models.Quotation, error) {
	return r.queryQuotations(`SELECT `+quotationColumns+` FROM quotations WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
}

func (r *PostgresQuotationRepo) UpdateQuotationStatus(id, status string) error {
	_, err := r.DB.Exec(`UPDATE quotations SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now().UTC(), id)
	return err
}

func (r *PostgresQuotationRepo) UpdatePDFInfo(id, url string, createdAt time.Time) error {
	_, err := r.DB.Exec(`UPDATE quotations SET pdf_url=$1, pdf_created_at=$2, updated_at=$3 WHERE id=$4`,
		url, createdAt, time.Now().UTC(), id)
	return err
}

func (r *PostgresQuotationRepo) DeleteQuotation(id string) error {
	_, err := r.DB.Exec(`DELETE FROM quotations WHERE id=$1`, id)
	return err
}
