package models

import "time"

type Deal struct {
	ID         string    `json:"id" bson:"_id,omitempty" db:"id"`
	LeadID     string    `json:"leadId" bson:"leadId" db:"lead_id"`
	CustomerID string    `json:"customerId,omitempty" bson:"customerId,omitempty" db:"customer_id"`
	Title      string    `json:"title" bson:"title" db:"title"`
	Value      float64   `json:"value" bson:"value" db:"value"`
	Stage      string    `json:"stage" bson:"stage" db:"stage"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}
