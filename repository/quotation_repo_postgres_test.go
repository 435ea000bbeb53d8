package repository

import (
	"testing"
	"time"

	"aspcranes/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quotationRows = []string{
	"id", "lead_id", "customer_id", "customer_name", "customer_contact", "order_type",
	"number_of_days", "working_hours", "shift", "usage", "risk_factor", "site_distance",
	"mob_demob", "mob_relaxation", "food_resources", "accom_resources", "extra_charge",
	"include_gst", "selected_equipment", "selected_machines", "total_rent", "version",
	"status", "pdf_url", "pdf_created_at", "created_at", "updated_at",
}

func TestCreateQuotationAppliesDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO quotations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewPostgresQuotationRepo(db)
	q := &models.Quotation{CustomerName: "Sharma Constructions", NumberOfDays: 10}
	require.NoError(t, repo.CreateQuotation(q))

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, models.QuotationStatusDraft, q.Status)
	assert.Equal(t, 1, q.Version)
	assert.False(t, q.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuotationByIDBackfillsLegacyRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(quotationRows).AddRow(
		"q-legacy-1", "", "", "Sharma Constructions", []byte(`{}`), "",
		30, 0.0, "", "", "", 0.0,
		0.0, 0.0, 0, 0, 0.0,
		false, []byte(`{"name":"Tower Crane TC-50"}`), []byte(`null`), 0.0, 0,
		"", nil, nil, now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM quotations WHERE id=\$1`).
		WithArgs("q-legacy-1").
		WillReturnRows(rows)

	repo := NewPostgresQuotationRepo(db)
	q, err := repo.GetQuotationByID("q-legacy-1")
	require.NoError(t, err)
	require.NotNil(t, q)

	assert.Equal(t, models.QuotationStatusDraft, q.Status)
	assert.Equal(t, 1, q.Version)
	assert.Equal(t, models.OrderTypeMicro, q.OrderType)
	assert.Equal(t, models.DefaultWorkingHours, q.WorkingHours)
	assert.Equal(t, models.ShiftSingle, q.Shift)
	assert.Equal(t, models.UsageNormal, q.Usage)
	assert.Equal(t, models.RiskLow, q.RiskFactor)
	assert.Equal(t, "Sharma Constructions", q.CustomerContact.Name)
	assert.Equal(t, "Tower Crane TC-50", q.EquipmentName)
	assert.Nil(t, q.PDFURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuotationByIDMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM quotations WHERE id=\$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(quotationRows))

	repo := NewPostgresQuotationRepo(db)
	q, err := repo.GetQuotationByID("missing")
	require.NoError(t, err)
	assert.Nil(t, q)
}
