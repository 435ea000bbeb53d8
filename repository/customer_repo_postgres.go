package repository

import (
	"database/sql"
	"errors"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

type PostgresCustomerRepo struct {
	DB *sql.DB
}

func NewPostgresCustomerRepo(db *sql.DB) *PostgresCustomerRepo {
	return &PostgresCustomerRepo{DB: db}
}

func (r *PostgresCustomerRepo) CreateCustomer(customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO customers (id, name, company_name, email, phone, address, designation, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, customer.ID, customer.Name, customer.CompanyName, customer.Email, customer.Phone,
		customer.Address, customer.Designation, customer.Notes, customer.CreatedAt, customer.UpdatedAt)
	return err
}

func (r *PostgresCustomerRepo) GetCustomers() ([]*models.Customer, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, company_name, email, phone, address, designation, notes, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CompanyName, &c.Email, &c.Phone,
			&c.Address, &c.Designation, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *PostgresCustomerRepo) GetCustomerByID(id string) (*models.Customer, error) {
	c := &models.Customer{}
	err := r.DB.QueryRow(`
		SELECT id, name, company_name, email, phone, address, designation, notes, created_at, updated_at
		FROM customers
		WHERE id=$1
	`, id).Scan(&c.ID, &c.Name, &c.CompanyName, &c.Email, &c.Phone,
		&c.Address, &c.Designation, &c.Notes, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresCustomerRepo) UpdateCustomer(customer *models.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	_, err := r.DB.Exec(`
		UPDATE customers
		SET name=$1, company_name=$2, email=$3, phone=$4, address=$5, designation=$6, notes=$7, updated_at=$8
		WHERE id=$9
	`, customer.Name, customer.CompanyName, customer.Email, customer.Phone,
		customer.Address, customer.Designation, customer.Notes, customer.UpdatedAt, customer.ID)
	return err
}

func (r *PostgresCustomerRepo) DeleteCustomer(id string) error {
	_, err := r.DB.Exec(`DELETE FROM customers WHERE id=$1`, id)
	return err
}
