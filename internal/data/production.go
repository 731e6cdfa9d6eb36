package data

import (
	"fmt"

	"solar-payback/internal/config"
	"solar-payback/internal/model"
)

// LoadProduction reads the per-Wp production reference profile: a named sheet
// with a textual timestamp column and one value column per grid area.
func LoadProduction(cfg config.DataConfig) (model.Series, error) {
	rows, err := openRows(cfg.ProductionFile, cfg.ProductionSheet)
	if err != nil {
		return model.Series{}, err
	}
	if len(rows) < 2 {
		return model.Series{}, fmt.Errorf("production workbook %s: no data rows", cfg.ProductionFile)
	}

	timeIdx, err := columnIndex(rows[0], cfg.ProductionTimeColumn)
	if err != nil {
		return model.Series{}, fmt.Errorf("production workbook %s: %w", cfg.ProductionFile, err)
	}
	areaIdx, err := columnIndex(rows[0], cfg.AreaColumn)
	if err != nil {
		return model.Series{}, fmt.Errorf("production workbook %s: %w", cfg.ProductionFile, err)
	}

	series := model.Series{Area: cfg.AreaColumn}
	for i, row := range rows[1:] {
		ts := cellAt(row, timeIdx)
		val := cellAt(row, areaIdx)
		if ts == "" && val == "" {
			continue
		}
		at, err := parseTimestamp(ts)
		if err != nil {
			return model.Series{}, fmt.Errorf("production row %d: %w", i+2, err)
		}
		v, err := parseValue(val)
		if err != nil {
			return model.Series{}, fmt.Errorf("production row %d: %w", i+2, err)
		}
		series.Samples = append(series.Samples, model.Sample{At: at, Value: v})
	}
	if series.Len() == 0 {
		return model.Series{}, fmt.Errorf("production workbook %s: empty series", cfg.ProductionFile)
	}
	return series, nil
}
