package repository

import "aspcranes/models"

type EquipmentRepository interface {
	CreateEquipment(equipment *models.Equipment) error
	GetEquipment(filters map[string]interface{}) ([]*models.Equipment, error)
	GetEquipmentByID(id string) (*models.Equipment, error)
	UpdateEquipment(equipment *models.Equipment) error
}
