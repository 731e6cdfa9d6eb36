package model

// GridPrices are the effective retail prices for electricity crossing the grid
// boundary, derived once at startup from the wholesale price series.
// Units: €/kWh. Invariant: Sell < Buy (sell is a discount on the wholesale
// mean, buy adds a markup plus a fixed grid fee).
type GridPrices struct {
	Buy  float64 `json:"buy_price"`
	Sell float64 `json:"sell_price"`
}

// EnergyFlow is the netted result of produced vs consumed energy over the
// historical window. Since netting happens on totals, at most one of the two
// fields is nonzero.
// Units: kWh.
type EnergyFlow struct {
	FromGridKWh float64 `json:"energy_from_grid_kwh"`
	ToGridKWh   float64 `json:"energy_to_grid_kwh"`
}

// ReferenceData bundles the three historical profiles loaded at process start.
type ReferenceData struct {
	// Production is a per-Wp reference generation profile at 15-minute resolution.
	Production Series
	// Consumption is a per-kWh-of-annual-use reference load profile.
	Consumption Series
	// Wholesale is the daily wholesale energy price series (€/MWh).
	Wholesale Series
}
