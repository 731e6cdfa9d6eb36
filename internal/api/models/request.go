package models

// CalculationRequest is the shared request body of both calculation endpoints.
// All three fields are mandatory and strictly positive; binding enforces this
// before the engine runs.
type CalculationRequest struct {
	// AnnualEnergyConsumption in kWh.
	AnnualEnergyConsumption float64 `json:"annual_energy_consumption" binding:"required,gt=0"`
	// InstallationCost in EUR.
	InstallationCost float64 `json:"installation_cost" binding:"required,gt=0"`
	// WpOfInstallation is the installation capacity in watt-peak.
	WpOfInstallation int `json:"wp_of_installation" binding:"required,gt=0"`
}
