package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
//
// Every numeric constant of the payback calculation lives here with a default
// matching the reference dataset, so a different dataset (other sampling
// interval, other tariff) only needs a config change.
type Config struct {
	Data        DataConfig        `yaml:"data"`
	Tariff      TariffConfig      `yaml:"tariff"`
	Calculation CalculationConfig `yaml:"calculation"`
	Search      SearchConfig      `yaml:"search"`
}

// DataConfig describes where the three reference spreadsheets live and how
// their sheets and columns are named.
type DataConfig struct {
	ProductionFile  string `yaml:"production_file"`
	ConsumptionFile string `yaml:"consumption_file"`
	WholesaleFile   string `yaml:"wholesale_file"`

	// ProductionSheet is the named sheet inside the production workbook.
	ProductionSheet string `yaml:"production_sheet"`
	// AreaColumn is the grid-area code column shared by the production and
	// consumption workbooks.
	AreaColumn string `yaml:"area_column"`
	// ConsumptionSkipRows is the number of metadata rows before the
	// consumption header row.
	ConsumptionSkipRows int `yaml:"consumption_skip_rows"`

	ProductionTimeColumn  string `yaml:"production_time_column"`
	ConsumptionTimeColumn string `yaml:"consumption_time_column"`
	WholesaleDateColumn   string `yaml:"wholesale_date_column"`
	WholesalePriceColumn  string `yaml:"wholesale_price_column"`
}

// TariffConfig holds the retail pricing policy applied on top of the wholesale
// mean. These are policy constants, not derived from input data.
type TariffConfig struct {
	// BuyMarkup multiplies the wholesale mean for grid imports.
	BuyMarkup float64 `yaml:"buy_markup"`
	// SellDiscount multiplies the wholesale mean for grid exports.
	SellDiscount float64 `yaml:"sell_discount"`
	// GridFeePerKWh is a fixed surcharge on every imported kWh.
	GridFeePerKWh float64 `yaml:"grid_fee_per_kwh"`
}

// CalculationConfig holds dataset-calibration constants.
type CalculationConfig struct {
	// ProductionIntervalHours is the duration of one production sample
	// (0.25 for a 15-minute profile). Converts per-sample output into energy.
	ProductionIntervalHours float64 `yaml:"production_interval_hours"`
}

// SearchConfig holds the optimal-capacity search policy.
type SearchConfig struct {
	// FixedCostEUR is the capacity-independent share of an installation price.
	FixedCostEUR float64 `yaml:"fixed_cost_eur"`
	// StepWp is the search granularity in watt-peak.
	StepWp int `yaml:"step_wp"`
}

// Default returns the configuration matching the reference dataset and the
// original tariff policy.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			ProductionFile:        "data/production_profiles.xlsx",
			ConsumptionFile:       "data/consumption_profiles.xlsx",
			WholesaleFile:         "data/energy_cost.xlsx",
			ProductionSheet:       "Ex-ante 2023 (IP8)",
			AreaColumn:            "5414492999998",
			ConsumptionSkipRows:   2,
			ProductionTimeColumn:  "UTC",
			ConsumptionTimeColumn: "CET",
			WholesaleDateColumn:   "Date",
			WholesalePriceColumn:  "Euro",
		},
		Tariff: TariffConfig{
			BuyMarkup:     1.20,
			SellDiscount:  0.80,
			GridFeePerKWh: 0.12,
		},
		Calculation: CalculationConfig{
			ProductionIntervalHours: 0.25,
		},
		Search: SearchConfig{
			FixedCostEUR: 1000,
			StepWp:       10,
		},
	}
}

// Load reads a YAML config file, fills unset fields with defaults, and
// validates the result. Relative data paths are resolved against the config
// file's directory when a file exists there.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.resolvePaths(filepath.Dir(path))
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s invalid: %w", path, err)
	}
	return c, nil
}

func (c *Config) resolvePaths(base string) {
	for _, p := range []*string{
		&c.Data.ProductionFile,
		&c.Data.ConsumptionFile,
		&c.Data.WholesaleFile,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			cand := filepath.Join(base, *p)
			if _, err := os.Stat(cand); err == nil {
				*p = cand
			}
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.ProductionFile == "" || c.Data.ConsumptionFile == "" || c.Data.WholesaleFile == "" {
		return errors.New("data.production_file, data.consumption_file and data.wholesale_file are required")
	}
	if c.Data.ProductionSheet == "" {
		return errors.New("data.production_sheet is required")
	}
	if c.Data.AreaColumn == "" {
		return errors.New("data.area_column is required")
	}
	if c.Data.ConsumptionSkipRows < 0 {
		return errors.New("data.consumption_skip_rows must be >= 0")
	}
	if c.Tariff.BuyMarkup <= 0 {
		return errors.New("tariff.buy_markup must be > 0")
	}
	if c.Tariff.SellDiscount <= 0 {
		return errors.New("tariff.sell_discount must be > 0")
	}
	if c.Tariff.GridFeePerKWh < 0 {
		return errors.New("tariff.grid_fee_per_kwh must be >= 0")
	}
	// Without a grid fee the multipliers alone must keep sell below buy.
	if c.Tariff.SellDiscount >= c.Tariff.BuyMarkup && c.Tariff.GridFeePerKWh == 0 {
		return errors.New("tariff.sell_discount must be below tariff.buy_markup unless a grid fee applies")
	}
	if c.Calculation.ProductionIntervalHours <= 0 {
		return errors.New("calculation.production_interval_hours must be > 0")
	}
	if c.Search.FixedCostEUR < 0 {
		return errors.New("search.fixed_cost_eur must be >= 0")
	}
	if c.Search.StepWp <= 0 {
		return errors.New("search.step_wp must be > 0")
	}
	return nil
}
