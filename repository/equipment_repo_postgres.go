package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

type PostgresEquipmentRepo struct {
	DB *sql.DB
}

func NewPostgresEquipmentRepo(db *sql.DB) *PostgresEquipmentRepo {
	return &PostgresEquipmentRepo{DB: db}
}

var equipmentFilterColumns = map[string]string{
	"status":   "status",
	"category": "category",
}

const equipmentColumns = `id, equipment_code, name, category, description, base_rates,
	running_cost_per_km, max_lifting_capacity, unladen_weight, status, created_at, updated_at`

func scanEquipment(row rowScanner) (*models.Equipment, error) {
	e := &models.Equipment{}
	var rates []byte
	err := row.Scan(&e.ID, &e.EquipmentCode, &e.Name, &e.Category, &e.Description, &rates,
		&e.RunningCostPerKm, &e.MaxLiftingCapacity, &e.UnladenWeight, &e.Status,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(rates) > 0 {
		if err := json.Unmarshal(rates, &e.BaseRates); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (r *PostgresEquipmentRepo) CreateEquipment(equipment *models.Equipment) error {
	if equipment.ID == "" {
		equipment.ID = uuid.NewString()
	}
	if equipment.EquipmentCode == "" {
		var count int
		if err := r.DB.QueryRow(`SELECT COUNT(*) FROM equipment`).Scan(&count); err != nil {
			return err
		}
		equipment.EquipmentCode = fmt.Sprintf("EQ%04d", count+1)
	}
	if equipment.Status == "" {
		equipment.Status = models.EquipmentStatusAvailable
	}
	now := time.Now().UTC()
	if equipment.CreatedAt.IsZero() {
		equipment.CreatedAt = now
	}
	equipment.UpdatedAt = now

	rates, err := json.Marshal(equipment.BaseRates)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO equipment (`+equipmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, equipment.ID, equipment.EquipmentCode, equipment.Name, equipment.Category,
		equipment.Description, rates, equipment.RunningCostPerKm, equipment.MaxLiftingCapacity,
		equipment.UnladenWeight, equipment.Status, equipment.CreatedAt, equipment.UpdatedAt)
	return err
}

func (r *PostgresEquipmentRepo) GetEquipment(filters map[string]interface{}) ([]*models.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment`
	args := []interface{}{}
	where := ""
	i := 1
	for key, val := range filters {
		col, ok := equipmentFilterColumns[key]
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
	query += where + ` ORDER BY equipment_code ASC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresEquipmentRepo) GetEquipmentByID(id string) (*models.Equipment, error) {
	row := r.DB.QueryRow(`SELECT `+equipmentColumns+` FROM equipment WHERE id=$1`, id)
	e, err := scanEquipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *PostgresEquipmentRepo) UpdateEquipment(equipment *models.Equipment) error {
	equipment.UpdatedAt = time.Now().UTC()
	rates, err := json.Marshal(equipment.BaseRates)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE equipment
		SET equipment_code=$1, name=$2, category=$3, description=$4, base_rates=$5,
			running_cost_per_km=$6, max_lifting_capacity=$7, unladen_weight=$8, status=$9, updated_at=$10
		WHERE id=$11
	`, equipment.EquipmentCode, equipment.Name, equipment.Category, equipment.Description, rates,
		equipment.RunningCostPerKm, equipment.MaxLiftingCapacity, equipment.UnladenWeight,
		equipment.Status, equipment.UpdatedAt, equipment.ID)
	return err
}
