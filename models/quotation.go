package models

import (
	"fmt"
	"time"
)

const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusApproved = "approved"
	QuotationStatusRejected = "rejected"
)

const (
	ShiftSingle = "single"
	ShiftDouble = "double"

	UsageNormal = "normal"
	UsageHeavy  = "heavy"

	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// DefaultWorkingHours is assumed whenever a quotation carries no working
// hours of its own.
const DefaultWorkingHours float64 = 8

// QuotationContact is the customer snapshot embedded in a quotation, kept
// separate from the customer record so old quotations survive edits.
type QuotationContact struct {
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company     string `json:"company,omitempty" bson:"company,omitempty"`
	Address     string `json:"address,omitempty" bson:"address,omitempty"`
	Designation string `json:"designation,omitempty" bson:"designation,omitempty"`
}

// SelectedEquipment is the legacy single-equipment selection with per-tier
// rates. Newer quotations carry SelectedMachines instead.
type SelectedEquipment struct {
	ID               string    `json:"id,omitempty" bson:"id,omitempty"`
	EquipmentCode    string    `json:"equipmentCode,omitempty" bson:"equipmentCode,omitempty"`
	Name             string    `json:"name" bson:"name"`
	BaseRates        BaseRates `json:"baseRates" bson:"baseRates"`
	RunningCostPerKm float64   `json:"runningCostPerKm" bson:"runningCostPerKm"`
}

type SelectedMachine struct {
	ID               string  `json:"id,omitempty" bson:"id,omitempty"`
	Name             string  `json:"name" bson:"name"`
	BaseRate         float64 `json:"baseRate" bson:"baseRate"`
	Quantity         int     `json:"quantity" bson:"quantity"`
	RunningCostPerKm float64 `json:"runningCostPerKm" bson:"runningCostPerKm"`
}

type Quotation struct {
	ID               string             `json:"id" bson:"_id,omitempty" db:"id"`
	LeadID           string             `json:"leadId,omitempty" bson:"leadId,omitempty" db:"lead_id"`
	CustomerID       string             `json:"customerId,omitempty" bson:"customerId,omitempty" db:"customer_id"`
	CustomerName     string             `json:"customerName" bson:"customerName" db:"customer_name"`
	CustomerContact  QuotationContact   `json:"customerContact" bson:"customerContact" db:"customer_contact"`
	OrderType        string             `json:"orderType" bson:"orderType" db:"order_type"`
	NumberOfDays     int                `json:"numberOfDays" bson:"numberOfDays" db:"number_of_days"`
	WorkingHours     float64            `json:"workingHours" bson:"workingHours" db:"working_hours"`
	Shift            string             `json:"shift" bson:"shift" db:"shift"`
	Usage            string             `json:"usage" bson:"usage" db:"usage"`
	RiskFactor       string             `json:"riskFactor" bson:"riskFactor" db:"risk_factor"`
	SiteDistance     float64            `json:"siteDistance" bson:"siteDistance" db:"site_distance"`
	MobDemob         float64            `json:"mobDemob" bson:"mobDemob" db:"mob_demob"`
	MobRelaxation    float64            `json:"mobRelaxation" bson:"mobRelaxation" db:"mob_relaxation"`
	FoodResources    int                `json:"foodResources" bson:"foodResources" db:"food_resources"`
	AccomResources   int                `json:"accomResources" bson:"accomResources" db:"accom_resources"`
	ExtraCharge      float64            `json:"extraCharge" bson:"extraCharge" db:"extra_charge"`
	IncludeGst       bool               `json:"includeGst" bson:"includeGst" db:"include_gst"`
	SelectedEquip    *SelectedEquipment `json:"selectedEquipment,omitempty" bson:"selectedEquipment,omitempty" db:"selected_equipment"`
	SelectedMachines []SelectedMachine  `json:"selectedMachines,omitempty" bson:"selectedMachines,omitempty" db:"selected_machines"`
	TotalRent        float64            `json:"totalRent" bson:"totalRent" db:"total_rent"`
	Version          int                `json:"version" bson:"version" db:"version"`
	Status           string             `json:"status" bson:"status" db:"status"`
	PDFURL           *string            `json:"pdfUrl,omitempty" bson:"pdfUrl,omitempty" db:"pdf_url"`
	PDFCreatedAt     *time.Time         `json:"pdfCreatedAt,omitempty" bson:"pdfCreatedAt,omitempty" db:"pdf_created_at"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt" db:"updated_at"`

	// Derived on read, never stored.
	EquipmentName string `json:"equipmentName" bson:"-" db:"-"`
}

// Normalize backfills every optional or legacy field that older stored
// quotations may lack. Every read path must run records through this before
// returning them, so callers never see a half-populated quotation.
func (q *Quotation) Normalize() {
	if q.Status == "" {
		q.Status = QuotationStatusDraft
	}
	if q.Version == 0 {
		q.Version = 1
	}
	if q.OrderType == "" {
		q.OrderType = OrderTypeMicro
	}
	if q.WorkingHours <= 0 {
		q.WorkingHours = DefaultWorkingHours
	}
	if q.Shift == "" {
		q.Shift = ShiftSingle
	}
	if q.Usage == "" {
		q.Usage = UsageNormal
	}
	if q.RiskFactor == "" {
		q.RiskFactor = RiskLow
	}
	if q.CustomerContact.Name == "" {
		q.CustomerContact.Name = q.CustomerName
	}
	q.EquipmentName = q.EquipmentDisplayName()
}

// EquipmentDisplayName names what the quotation covers. Machine selections
// win over the legacy single-equipment field.
func (q *Quotation) EquipmentDisplayName() string {
	switch {
	case len(q.SelectedMachines) > 1:
		return fmt.Sprintf("%d machines selected", len(q.SelectedMachines))
	case len(q.SelectedMachines) == 1:
		return q.SelectedMachines[0].Name
	case q.SelectedEquip != nil && q.SelectedEquip.Name != "":
		return q.SelectedEquip.Name
	default:
		return "Unknown Equipment"
	}
}
