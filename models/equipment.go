package models

import "time"

const (
	EquipmentStatusAvailable   = "available"
	EquipmentStatusInUse       = "in_use"
	EquipmentStatusMaintenance = "maintenance"
)

// Rental rate tiers. Micro and small are hourly rates, monthly and yearly
// are whole-month rates.
const (
	OrderTypeMicro   = "micro"
	OrderTypeSmall   = "small"
	OrderTypeMonthly = "monthly"
	OrderTypeYearly  = "yearly"
)

type BaseRates struct {
	Micro   float64 `json:"micro" bson:"micro" db:"micro"`
	Small   float64 `json:"small" bson:"small" db:"small"`
	Monthly float64 `json:"monthly" bson:"monthly" db:"monthly"`
	Yearly  float64 `json:"yearly" bson:"yearly" db:"yearly"`
}

// ForOrderType picks the rate tier for an order type, falling back to the
// micro tier for anything unrecognized.
func (b BaseRates) ForOrderType(orderType string) float64 {
	switch orderType {
	case OrderTypeSmall:
		return b.Small
	case OrderTypeMonthly:
		return b.Monthly
	case OrderTypeYearly:
		return b.Yearly
	default:
		return b.Micro
	}
}

type Equipment struct {
	ID                 string    `json:"id" bson:"_id,omitempty" db:"id"`
	EquipmentCode      string    `json:"equipmentCode" bson:"equipmentCode" db:"equipment_code"`
	Name               string    `json:"name" bson:"name" db:"name"`
	Category           string    `json:"category" bson:"category" db:"category"`
	Description        string    `json:"description,omitempty" bson:"description,omitempty" db:"description"`
	BaseRates          BaseRates `json:"baseRates" bson:"baseRates" db:"base_rates"`
	RunningCostPerKm   float64   `json:"runningCostPerKm" bson:"runningCostPerKm" db:"running_cost_per_km"`
	MaxLiftingCapacity float64   `json:"maxLiftingCapacity" bson:"maxLiftingCapacity" db:"max_lifting_capacity"`
	UnladenWeight      float64   `json:"unladenWeight" bson:"unladenWeight" db:"unladen_weight"`
	Status             string    `json:"status" bson:"status" db:"status"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}
