package pricing

import "aspcranes/models"

// SelectionFrom builds the selection for a stored quotation. A non-empty
// machine list always wins over the legacy single-equipment field; when the
// quotation carries neither, the selection is nil and the total prices to 0.
func SelectionFrom(q *models.Quotation) Selection {
	if len(q.SelectedMachines) > 0 {
		fleet := make(Fleet, 0, len(q.SelectedMachines))
		for _, m := range q.SelectedMachines {
			fleet = append(fleet, Machine{
				Name:             m.Name,
				BaseRate:         m.BaseRate,
				Quantity:         m.Quantity,
				RunningCostPerKm: m.RunningCostPerKm,
			})
		}
		return fleet
	}
	if q.SelectedEquip != nil {
		return Single{
			BaseRates:        q.SelectedEquip.BaseRates,
			RunningCostPerKm: q.SelectedEquip.RunningCostPerKm,
		}
	}
	return nil
}

// InputFrom maps a quotation onto a pricing input.
func InputFrom(q *models.Quotation) Input {
	return Input{
		OrderType:      q.OrderType,
		NumberOfDays:   q.NumberOfDays,
		WorkingHours:   q.WorkingHours,
		Shift:          q.Shift,
		Usage:          q.Usage,
		RiskFactor:     q.RiskFactor,
		SiteDistance:   q.SiteDistance,
		MobDemob:       q.MobDemob,
		MobRelaxation:  q.MobRelaxation,
		FoodResources:  q.FoodResources,
		AccomResources: q.AccomResources,
		ExtraCharge:    q.ExtraCharge,
		IncludeGst:     q.IncludeGst,
		Selection:      SelectionFrom(q),
	}
}
