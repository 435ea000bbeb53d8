// Package pricing computes the total rent for a quotation. The calculation
// is pure: it reads the input, returns a number, and swallows any internal
// failure into a 0 total so a bad record can never take down a request.
package pricing

import "aspcranes/models"

const (
	// Billing normalizes every month to 26 working days.
	monthDays = 26

	foodRatePerMonth  = 2500
	accomRatePerMonth = 4000

	gstRate = 0.18
)

// Selection is what the customer is renting: either a legacy single
// equipment with tiered rates, or a list of machines. The two never mix in
// one calculation.
type Selection interface {
	workingCost(t terms) float64
	usageLoad(t terms, pct float64) float64
	riskAdjustment(t terms, pct float64) float64
	mobilization(distance, relaxationPct, flatFee float64) float64
}

// Single is the legacy one-equipment selection. The rate tier is picked by
// the order type.
type Single struct {
	BaseRates        models.BaseRates
	RunningCostPerKm float64
}

// Machine is one entry of a multi-machine selection.
type Machine struct {
	Name             string
	BaseRate         float64
	Quantity         int
	RunningCostPerKm float64
}

// Fleet is a non-empty multi-machine selection. Each cost component is
// computed per machine, scaled by its quantity, and summed.
type Fleet []Machine

// Input carries everything the calculation reads. Zero values stand for
// absent fields.
type Input struct {
	OrderType      string
	NumberOfDays   int
	WorkingHours   float64
	Shift          string
	Usage          string
	RiskFactor     string
	SiteDistance   float64
	MobDemob       float64
	MobRelaxation  float64
	FoodResources  int
	AccomResources int
	ExtraCharge    float64
	IncludeGst     bool
	Selection      Selection
}

// terms is the resolved billing context shared by every cost component.
type terms struct {
	orderType     string
	hours         float64
	days          float64
	effectiveDays float64
	shiftMult     float64
	monthly       bool
}

// TotalRent computes the quoted total. It never fails: a zero-day input, a
// missing selection, or any panic during computation yields 0.
func TotalRent(in Input) (total float64) {
	defer func() {
		if r := recover(); r != nil {
			total = 0
		}
	}()

	if in.NumberOfDays <= 0 {
		return 0
	}
	sel := in.Selection
	if sel == nil {
		return 0
	}
	if f, ok := sel.(Fleet); ok && len(f) == 0 {
		return 0
	}

	hours := in.WorkingHours
	if hours <= 0 {
		hours = models.DefaultWorkingHours
	}

	t := terms{
		orderType:     in.OrderType,
		hours:         hours,
		days:          float64(in.NumberOfDays),
		effectiveDays: float64(in.NumberOfDays),
		shiftMult:     1,
		monthly:       in.NumberOfDays > 25,
	}
	if t.monthly {
		t.effectiveDays = monthDays
	}
	if in.Shift == models.ShiftDouble {
		t.shiftMult = 2
	}

	working := sel.workingCost(t)
	foodAccom := foodAccomCost(in.FoodResources, in.AccomResources, t)
	mobility := sel.mobilization(in.SiteDistance, in.MobRelaxation, in.MobDemob)
	riskAdj := sel.riskAdjustment(t, riskPercent(in.RiskFactor))
	usageLoad := sel.usageLoad(t, usagePercent(in.Usage))

	subtotal := working + foodAccom + mobility + riskAdj + usageLoad + in.ExtraCharge
	if in.IncludeGst {
		return subtotal + subtotal*gstRate
	}
	return subtotal
}

func (s Single) workingCost(t terms) float64 {
	return workingCost(s.BaseRates.ForOrderType(t.orderType), t)
}

func (s Single) usageLoad(t terms, pct float64) float64 {
	return s.BaseRates.ForOrderType(t.orderType) * pct
}

func (s Single) riskAdjustment(t terms, pct float64) float64 {
	return s.BaseRates.ForOrderType(t.orderType) * pct
}

func (s Single) mobilization(distance, relaxationPct, flatFee float64) float64 {
	return roundTripCost(distance, s.RunningCostPerKm, relaxationPct) + flatFee
}

func (f Fleet) workingCost(t terms) float64 {
	var sum float64
	for _, m := range f {
		sum += workingCost(m.BaseRate, t) * float64(m.Quantity)
	}
	return sum
}

func (f Fleet) usageLoad(_ terms, pct float64) float64 {
	var sum float64
	for _, m := range f {
		sum += m.BaseRate * pct * float64(m.Quantity)
	}
	return sum
}

func (f Fleet) riskAdjustment(_ terms, pct float64) float64 {
	var sum float64
	for _, m := range f {
		sum += m.BaseRate * pct * float64(m.Quantity)
	}
	return sum
}

func (f Fleet) mobilization(distance, relaxationPct, flatFee float64) float64 {
	var sum float64
	for _, m := range f {
		qty := float64(m.Quantity)
		sum += roundTripCost(distance*qty, m.RunningCostPerKm, relaxationPct) + flatFee*qty
	}
	return sum
}

// workingCost is the shift-adjusted cost of running one unit at the given
// rate. Monthly billing divides the rate down to an hourly figure and
// multiplies back up over the 26-day month. Do not simplify the monthly
// arithmetic, stored totals were produced by this exact sequence.
func workingCost(rate float64, t terms) float64 {
	if t.monthly {
		hourly := (rate / monthDays) / t.hours
		return hourly * t.hours * t.effectiveDays * t.shiftMult
	}
	return rate * t.hours * t.days * t.shiftMult
}

// roundTripCost is the to-and-fro transport distance cost with the
// negotiated relaxation taken off. The relaxation never touches the flat
// mob-demob fee.
func roundTripCost(distance, runningCostPerKm, relaxationPct float64) float64 {
	cost := distance * runningCostPerKm * 2
	return cost - cost*relaxationPct/100
}

func foodAccomCost(foodUnits, accomUnits int, t terms) float64 {
	food := float64(foodUnits)
	accom := float64(accomUnits)
	if t.monthly {
		return foodRatePerMonth*food + accomRatePerMonth*accom
	}
	daily := foodRatePerMonth/float64(monthDays)*food + accomRatePerMonth/float64(monthDays)*accom
	return daily * t.effectiveDays
}

func usagePercent(usage string) float64 {
	if usage == models.UsageHeavy {
		return 0.10
	}
	return 0.05
}

func riskPercent(risk string) float64 {
	switch risk {
	case models.RiskHigh:
		return 0.15
	case models.RiskMedium:
		return 0.10
	default:
		return 0.05
	}
}
