package payback

// PaybackTime returns the years until cumulative savings equal the
// installation cost. When annual savings are zero or negative the result is
// ErrNeverPaysBack, never a negative or infinite number.
func (e *Engine) PaybackTime(annualConsumptionKWh, installationCost float64, capacityWp int) (float64, error) {
	if err := validatePositive("annual energy consumption", annualConsumptionKWh); err != nil {
		return 0, err
	}
	if err := validatePositive("installation cost", installationCost); err != nil {
		return 0, err
	}
	if err := validatePositive("installation capacity", float64(capacityWp)); err != nil {
		return 0, err
	}

	annualSavings := -e.TotalCost(annualConsumptionKWh, capacityWp)
	if annualSavings <= 0 {
		return 0, ErrNeverPaysBack
	}
	return installationCost / annualSavings, nil
}

// OptimalWp scans capacities from the hint to twice the hint, in fixed steps,
// for the capacity minimising the payback time. The per-candidate installation
// cost is the fixed cost plus a variable share derived once from the hint:
//
//	variable per Wp = (installationCost - fixedCost) / capacityHint
//
// Candidates whose savings (or derived cost) are not positive have no
// meaningful payback time and are skipped; if every candidate is skipped the
// result is ErrNeverPaysBack. Ties resolve to the lowest capacity because the
// scan ascends and only replaces the best on strict improvement.
func (e *Engine) OptimalWp(annualConsumptionKWh, installationCost float64, capacityHintWp int) (int, error) {
	if err := validatePositive("annual energy consumption", annualConsumptionKWh); err != nil {
		return 0, err
	}
	if err := validatePositive("installation cost", installationCost); err != nil {
		return 0, err
	}
	if err := validatePositive("installation capacity", float64(capacityHintWp)); err != nil {
		return 0, err
	}

	variableCostPerWp := (installationCost - e.fixedCostEUR) / float64(capacityHintWp)

	found := false
	bestWp := 0
	bestYears := 0.0
	for wp := capacityHintWp; wp <= 2*capacityHintWp; wp += e.stepWp {
		candidateCost := e.fixedCostEUR + variableCostPerWp*float64(wp)
		if candidateCost <= 0 {
			continue
		}
		annualSavings := -e.TotalCost(annualConsumptionKWh, wp)
		if annualSavings <= 0 {
			continue
		}
		years := candidateCost / annualSavings
		if !found || years < bestYears {
			found = true
			bestWp = wp
			bestYears = years
		}
	}
	if !found {
		return 0, ErrNeverPaysBack
	}
	return bestWp, nil
}
