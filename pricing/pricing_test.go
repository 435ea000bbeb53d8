package pricing

import (
	"testing"

	"aspcranes/models"

	"github.com/stretchr/testify/assert"
)

func singleWithRates(rate, runningCostPerKm float64) Single {
	return Single{
		BaseRates:        models.BaseRates{Micro: rate, Small: rate, Monthly: rate, Yearly: rate},
		RunningCostPerKm: runningCostPerKm,
	}
}

func TestZeroDaysAlwaysZero(t *testing.T) {
	in := Input{
		OrderType:      models.OrderTypeMonthly,
		NumberOfDays:   0,
		WorkingHours:   8,
		Shift:          models.ShiftDouble,
		Usage:          models.UsageHeavy,
		RiskFactor:     models.RiskHigh,
		SiteDistance:   500,
		MobDemob:       20000,
		MobRelaxation:  10,
		FoodResources:  4,
		AccomResources: 4,
		ExtraCharge:    9999,
		IncludeGst:     true,
		Selection:      singleWithRates(100000, 120),
	}
	assert.Equal(t, 0.0, TotalRent(in))
}

func TestMonthlyBoundary(t *testing.T) {
	sel := Single{
		BaseRates:        models.BaseRates{Monthly: 260000},
		RunningCostPerKm: 0,
	}
	base := Input{
		OrderType:    models.OrderTypeMonthly,
		WorkingHours: 8,
		Selection:    sel,
	}

	// 25 days bills daily: 260000 * 8h * 25d, plus 5% usage and 5% risk.
	daily := base
	daily.NumberOfDays = 25
	assert.Equal(t, 52026000.0, TotalRent(daily))

	// 26 days bills as one normalized month: the rate divides down to
	// (260000/26)/8 = 1250/h and multiplies back to exactly 260000.
	monthly := base
	monthly.NumberOfDays = 26
	assert.Equal(t, 286000.0, TotalRent(monthly))

	// 60 days still bills the one normalized month.
	long := base
	long.NumberOfDays = 60
	assert.Equal(t, TotalRent(monthly), TotalRent(long))
}

func TestMachinesTakePrecedenceOverEquipment(t *testing.T) {
	both := &models.Quotation{
		NumberOfDays: 1,
		WorkingHours: 8,
		SelectedEquip: &models.SelectedEquipment{
			Name:             "Pick & Carry Crane",
			BaseRates:        models.BaseRates{Micro: 9999},
			RunningCostPerKm: 99,
		},
		SelectedMachines: []models.SelectedMachine{
			{Name: "Tower Crane", BaseRate: 1000, Quantity: 2, RunningCostPerKm: 10},
		},
	}
	machinesOnly := &models.Quotation{
		NumberOfDays:     1,
		WorkingHours:     8,
		SelectedMachines: both.SelectedMachines,
	}

	got := TotalRent(InputFrom(both))
	assert.Equal(t, TotalRent(InputFrom(machinesOnly)), got)

	// working 1000*8*1*2 + usage 1000*0.05*2 + risk 1000*0.05*2
	assert.Equal(t, 16200.0, got)
}

func TestGstAddsExactly18Percent(t *testing.T) {
	in := Input{
		OrderType:      models.OrderTypeSmall,
		NumberOfDays:   12,
		WorkingHours:   10,
		Shift:          models.ShiftDouble,
		Usage:          models.UsageHeavy,
		RiskFactor:     models.RiskMedium,
		SiteDistance:   75,
		MobDemob:       5000,
		MobRelaxation:  20,
		FoodResources:  2,
		AccomResources: 2,
		ExtraCharge:    1500,
		Selection:      singleWithRates(1200, 80),
	}

	subtotal := TotalRent(in)
	assert.Greater(t, subtotal, 0.0)

	withGst := in
	withGst.IncludeGst = true
	assert.Equal(t, subtotal+subtotal*0.18, TotalRent(withGst))
}

func TestMobilizationRelaxation(t *testing.T) {
	in := Input{
		NumberOfDays:  1,
		SiteDistance:  100,
		MobRelaxation: 50,
		MobDemob:      0,
		Selection:     singleWithRates(0, 10),
	}
	// (100 * 10 * 2) * 0.5
	assert.Equal(t, 1000.0, TotalRent(in))
}

func TestRelaxationNeverTouchesFlatFee(t *testing.T) {
	in := Input{
		NumberOfDays:  1,
		SiteDistance:  100,
		MobRelaxation: 100,
		MobDemob:      3000,
		Selection:     singleWithRates(0, 10),
	}
	// distance cost fully relaxed away, flat fee untouched
	assert.Equal(t, 3000.0, TotalRent(in))
}

func TestRiskPercentages(t *testing.T) {
	tests := []struct {
		risk string
		want float64
	}{
		{models.RiskLow, 8100},    // working 8000 + usage 50 + risk 50
		{models.RiskMedium, 8150}, // working 8000 + usage 50 + risk 100
		{models.RiskHigh, 8200},   // working 8000 + usage 50 + risk 150
	}
	for _, tt := range tests {
		t.Run(tt.risk, func(t *testing.T) {
			in := Input{
				NumberOfDays: 1,
				WorkingHours: 8,
				RiskFactor:   tt.risk,
				Selection:    singleWithRates(1000, 0),
			}
			assert.Equal(t, tt.want, TotalRent(in))
		})
	}
}

func TestRiskScalesWithQuantity(t *testing.T) {
	in := Input{
		NumberOfDays: 1,
		WorkingHours: 8,
		RiskFactor:   models.RiskHigh,
		Selection:    Fleet{{BaseRate: 1000, Quantity: 3}},
	}
	// (working 8000 + usage 50 + risk 150) * 3
	assert.Equal(t, 24600.0, TotalRent(in))
}

func TestDoubleShiftDoublesWorkingCostOnly(t *testing.T) {
	single := Input{
		NumberOfDays: 1,
		WorkingHours: 8,
		Shift:        models.ShiftSingle,
		Selection:    singleWithRates(1000, 0),
	}
	double := single
	double.Shift = models.ShiftDouble

	assert.Equal(t, 8100.0, TotalRent(single))
	assert.Equal(t, 16100.0, TotalRent(double))
}

func TestWorkingHoursDefaultToEight(t *testing.T) {
	withHours := Input{
		NumberOfDays: 3,
		WorkingHours: 8,
		Selection:    singleWithRates(1000, 0),
	}
	withoutHours := withHours
	withoutHours.WorkingHours = 0

	assert.Equal(t, TotalRent(withHours), TotalRent(withoutHours))
}

func TestFoodAndAccommodation(t *testing.T) {
	base := Input{
		FoodResources:  2,
		AccomResources: 1,
		Selection:      singleWithRates(0, 0),
	}

	// Monthly billing charges the flat month: 2500*2 + 4000*1.
	monthly := base
	monthly.NumberOfDays = 30
	assert.Equal(t, 9000.0, TotalRent(monthly))

	// Daily billing derives a per-day rate from the 26-day month.
	daily := base
	daily.NumberOfDays = 13
	assert.InDelta(t, (2500.0/26*2+4000.0/26*1)*13, TotalRent(daily), 1e-9)
}

type explodingSelection struct{}

func (explodingSelection) workingCost(terms) float64 { panic("boom") }

func (explodingSelection) usageLoad(terms, float64) float64 { return 0 }

func (explodingSelection) riskAdjustment(terms, float64) float64 { return 0 }

func (explodingSelection) mobilization(_, _, _ float64) float64 { return 0 }

func TestInternalFailureYieldsZero(t *testing.T) {
	in := Input{NumberOfDays: 10, WorkingHours: 8, Selection: explodingSelection{}}
	assert.Equal(t, 0.0, TotalRent(in))
}

func TestMissingSelectionYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, TotalRent(Input{NumberOfDays: 10}))
	assert.Equal(t, 0.0, TotalRent(Input{NumberOfDays: 10, Selection: Fleet{}}))
}

func TestSelectionFrom(t *testing.T) {
	q := &models.Quotation{
		SelectedEquip: &models.SelectedEquipment{Name: "Pick & Carry Crane"},
	}
	_, isSingle := SelectionFrom(q).(Single)
	assert.True(t, isSingle)

	q.SelectedMachines = []models.SelectedMachine{{Name: "Tower Crane", Quantity: 1}}
	_, isFleet := SelectionFrom(q).(Fleet)
	assert.True(t, isFleet)

	assert.Nil(t, SelectionFrom(&models.Quotation{}))
}
