package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

type PostgresJobRepo struct {
	DB *sql.DB
}

func NewPostgresJobRepo(db *sql.DB) *PostgresJobRepo {
	return &PostgresJobRepo{DB: db}
}

var jobFilterColumns = map[string]string{
	"status":      "status",
	"leadId":      "lead_id",
	"equipmentId": "equipment_id",
	"operatorId":  "operator_id",
}

const jobColumns = `id, lead_id, customer_name, equipment_id, operator_id, status,
	start_date, end_date, location, notes, created_at, updated_at`

func scanJob(row rowScanner) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(&j.ID, &j.LeadID, &j.CustomerName, &j.EquipmentID, &j.OperatorID,
		&j.Status, &j.StartDate, &j.EndDate, &j.Location, &j.Notes, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *PostgresJobRepo) CreateJob(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = models.JobStatusScheduled
	}
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, job.ID, job.LeadID, job.CustomerName, job.EquipmentID, job.OperatorID, job.Status,
		job.StartDate, job.EndDate, job.Location, job.Notes, job.CreatedAt, job.UpdatedAt)
	return err
}

func (r *PostgresJobRepo) GetJobs(filters map[string]interface{}) ([]*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	args := []interface{}{}
	where := ""
	i := 1
	for key, val := range filters {
		col, ok := jobFilterColumns[key]
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

	var out []*models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepo) GetJobByID(id string) (*models.Job, error) {
	row := r.DB.QueryRow(`SELECT `+jobColumns+` FROM jobs WHERE id=$1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return j, nil
}

func (r *PostgresJobRepo) UpdateJobStatus(id, status string) error {
	_, err := r.DB.Exec(`UPDATE jobs SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now().UTC(), id)
	return err
}
