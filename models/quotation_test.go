package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBackfillsDefaults(t *testing.T) {
	q := Quotation{CustomerName: "Ramesh Kumar"}
	q.Normalize()

	assert.Equal(t, QuotationStatusDraft, q.Status)
	assert.Equal(t, 1, q.Version)
	assert.Equal(t, OrderTypeMicro, q.OrderType)
	assert.Equal(t, DefaultWorkingHours, q.WorkingHours)
	assert.Equal(t, ShiftSingle, q.Shift)
	assert.Equal(t, UsageNormal, q.Usage)
	assert.Equal(t, RiskLow, q.RiskFactor)
	assert.Equal(t, "Ramesh Kumar", q.CustomerContact.Name)
	assert.Equal(t, "Unknown Equipment", q.EquipmentName)
}

func TestNormalizeKeepsProvidedValues(t *testing.T) {
	q := Quotation{
		CustomerName:    "Ramesh Kumar",
		CustomerContact: QuotationContact{Name: "Suresh Patil"},
		OrderType:       OrderTypeMonthly,
		WorkingHours:    10,
		Shift:           ShiftDouble,
		Usage:           UsageHeavy,
		RiskFactor:      RiskHigh,
		Status:          QuotationStatusSent,
		Version:         3,
	}
	q.Normalize()

	assert.Equal(t, "Suresh Patil", q.CustomerContact.Name)
	assert.Equal(t, OrderTypeMonthly, q.OrderType)
	assert.Equal(t, float64(10), q.WorkingHours)
	assert.Equal(t, ShiftDouble, q.Shift)
	assert.Equal(t, UsageHeavy, q.Usage)
	assert.Equal(t, RiskHigh, q.RiskFactor)
	assert.Equal(t, QuotationStatusSent, q.Status)
	assert.Equal(t, 3, q.Version)
}

func TestNormalizeTreatsNegativeWorkingHoursAsAbsent(t *testing.T) {
	q := Quotation{WorkingHours: -4}
	q.Normalize()
	assert.Equal(t, DefaultWorkingHours, q.WorkingHours)
}

func TestEquipmentDisplayName(t *testing.T) {
	tests := []struct {
		name string
		q    Quotation
		want string
	}{
		{
			name: "multiple machines",
			q: Quotation{SelectedMachines: []SelectedMachine{
				{Name: "Tower Crane TC-50"},
				{Name: "Mobile Crane MC-30"},
				{Name: "Crawler Crane CC-80"},
			}},
			want: "3 machines selected",
		},
		{
			name: "single machine",
			q:    Quotation{SelectedMachines: []SelectedMachine{{Name: "Tower Crane TC-50"}}},
			want: "Tower Crane TC-50",
		},
		{
			name: "legacy equipment",
			q:    Quotation{SelectedEquip: &SelectedEquipment{Name: "Pick & Carry Crane"}},
			want: "Pick & Carry Crane",
		},
		{
			name: "machines win over legacy equipment",
			q: Quotation{
				SelectedEquip:    &SelectedEquipment{Name: "Pick & Carry Crane"},
				SelectedMachines: []SelectedMachine{{Name: "Tower Crane TC-50"}, {Name: "Mobile Crane MC-30"}},
			},
			want: "2 machines selected",
		},
		{
			name: "nothing selected",
			q:    Quotation{},
			want: "Unknown Equipment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.EquipmentDisplayName())
		})
	}
}
