package data

import (
	"fmt"

	"solar-payback/internal/config"
	"solar-payback/internal/model"
)

// LoadReferenceData loads all three historical profiles. Any failure here is
// fatal for the caller: the engine cannot produce correct answers without the
// reference data, so process start should abort rather than degrade.
func LoadReferenceData(cfg config.DataConfig) (*model.ReferenceData, error) {
	production, err := LoadProduction(cfg)
	if err != nil {
		return nil, fmt.Errorf("load production profile: %w", err)
	}
	consumption, err := LoadConsumption(cfg)
	if err != nil {
		return nil, fmt.Errorf("load consumption profile: %w", err)
	}
	wholesale, err := LoadWholesale(cfg)
	if err != nil {
		return nil, fmt.Errorf("load wholesale prices: %w", err)
	}
	return &model.ReferenceData{
		Production:  production,
		Consumption: consumption,
		Wholesale:   wholesale,
	}, nil
}
