package models

import "time"

const (
	JobStatusPending    = "pending"
	JobStatusScheduled  = "scheduled"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

type Job struct {
	ID           string    `json:"id" bson:"_id,omitempty" db:"id"`
	LeadID       string    `json:"leadId" bson:"leadId" db:"lead_id"`
	CustomerName string    `json:"customerName" bson:"customerName" db:"customer_name"`
	EquipmentID  string    `json:"equipmentId" bson:"equipmentId" db:"equipment_id"`
	OperatorID   string    `json:"operatorId,omitempty" bson:"operatorId,omitempty" db:"operator_id"`
	Status       string    `json:"status" bson:"status" db:"status"`
	StartDate    string    `json:"startDate" bson:"startDate" db:"start_date"`
	EndDate      string    `json:"endDate" bson:"endDate" db:"end_date"`
	Location     string    `json:"location" bson:"location" db:"location"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}
