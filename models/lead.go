package models

import "time"

// Lead statuses follow the pipeline order used by the sales team.
const (
	LeadStatusNew         = "new"
	LeadStatusInProcess   = "in_process"
	LeadStatusQualified   = "qualified"
	LeadStatusUnqualified = "unqualified"
	LeadStatusLost        = "lost"
	LeadStatusConverted   = "converted"
)

const (
	LeadPriorityNormal = "normal"
	LeadPriorityHigh   = "high"
)

type Lead struct {
	ID            string    `json:"id" bson:"_id,omitempty" db:"id"`
	CustomerID    string    `json:"customerId,omitempty" bson:"customerId,omitempty" db:"customer_id"`
	CustomerName  string    `json:"customerName" bson:"customerName" db:"customer_name"`
	CompanyName   string    `json:"companyName,omitempty" bson:"companyName,omitempty" db:"company_name"`
	Email         string    `json:"email" bson:"email" db:"email"`
	Phone         string    `json:"phone" bson:"phone" db:"phone"`
	ServiceNeeded string    `json:"serviceNeeded" bson:"serviceNeeded" db:"service_needed"`
	SiteLocation  string    `json:"siteLocation" bson:"siteLocation" db:"site_location"`
	StartDate     string    `json:"startDate" bson:"startDate" db:"start_date"`
	RentalDays    int       `json:"rentalDays" bson:"rentalDays" db:"rental_days"`
	ShiftTiming   string    `json:"shiftTiming" bson:"shiftTiming" db:"shift_timing"`
	Status        string    `json:"status" bson:"status" db:"status"`
	Source        string    `json:"source" bson:"source" db:"source"`
	Priority      string    `json:"priority" bson:"priority" db:"priority"`
	AssignedTo    string    `json:"assignedTo,omitempty" bson:"assignedTo,omitempty" db:"assigned_to"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty" db:"notes"`
	FollowupDate  time.Time `json:"followupDate" bson:"followupDate" db:"followup_date"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}
