package payback

import (
	"math"

	"solar-payback/internal/model"
)

// Breakdown carries every intermediate of one cost estimate, for logging and
// report rendering.
type Breakdown struct {
	TotalProducedKWh float64          `json:"total_produced_kwh"`
	TotalConsumedKWh float64          `json:"total_consumed_kwh"`
	Flow             model.EnergyFlow `json:"flow"`
	CostFromGrid     float64          `json:"cost_from_grid"`
	RevenueToGrid    float64          `json:"revenue_to_grid"`
	// TotalCost is signed: positive is a net annual cost, negative a net saving.
	TotalCost float64 `json:"total_cost"`
}

// TotalProducedKWh scales the per-Wp reference profile linearly by the
// installed capacity. Each sample covers intervalHours of output; the divisor
// converts the Wp scale into kWh.
func (e *Engine) TotalProducedKWh(capacityWp int) float64 {
	return e.productionSumPerWp * float64(capacityWp) * e.intervalHours / wattsPerKilowatt
}

// TotalConsumedKWh scales the normalised load profile by the requested annual
// consumption.
func (e *Engine) TotalConsumedKWh(annualConsumptionKWh float64) float64 {
	return e.consumptionSumPerKWh * annualConsumptionKWh
}

// NetFlow nets total production against total consumption over the historical
// window. Only the surplus or the deficit crosses the grid boundary, so at
// most one of the two fields is nonzero.
func NetFlow(totalProducedKWh, totalConsumedKWh float64) model.EnergyFlow {
	return model.EnergyFlow{
		FromGridKWh: math.Max(0, totalConsumedKWh-totalProducedKWh),
		ToGridKWh:   math.Max(0, totalProducedKWh-totalConsumedKWh),
	}
}

// TotalCost is the signed annual energy cost for the given consumption and
// capacity. Pure: identical arguments always yield identical results.
func (e *Engine) TotalCost(annualConsumptionKWh float64, capacityWp int) float64 {
	return e.CostBreakdown(annualConsumptionKWh, capacityWp).TotalCost
}

// CostBreakdown computes the full energy and cost accounting for one estimate.
func (e *Engine) CostBreakdown(annualConsumptionKWh float64, capacityWp int) Breakdown {
	produced := e.TotalProducedKWh(capacityWp)
	consumed := e.TotalConsumedKWh(annualConsumptionKWh)
	flow := NetFlow(produced, consumed)

	cost := flow.FromGridKWh * e.prices.Buy
	revenue := flow.ToGridKWh * e.prices.Sell

	return Breakdown{
		TotalProducedKWh: produced,
		TotalConsumedKWh: consumed,
		Flow:             flow,
		CostFromGrid:     cost,
		RevenueToGrid:    revenue,
		TotalCost:        cost - revenue,
	}
}
