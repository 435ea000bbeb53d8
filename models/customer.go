package models

import "time"

type Customer struct {
	ID          string    `json:"id" bson:"_id,omitempty" db:"id"`
	Name        string    `json:"name" bson:"name" db:"name"`
	CompanyName string    `json:"companyName" bson:"companyName" db:"company_name"`
	Email       string    `json:"email" bson:"email" db:"email"`
	Phone       string    `json:"phone" bson:"phone" db:"phone"`
	Address     string    `json:"address" bson:"address" db:"address"`
	Designation string    `json:"designation" bson:"designation" db:"designation"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}
