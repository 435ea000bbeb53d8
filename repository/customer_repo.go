package repository

import "aspcranes/models"

type CustomerRepository interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomers() ([]*models.Customer, error)
	GetCustomerByID(id string) (*models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(id string) error
}
