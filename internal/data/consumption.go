package data

import (
	"fmt"

	"solar-payback/internal/config"
	"solar-payback/internal/model"
)

// LoadConsumption reads the per-unit consumption reference profile. The first
// ConsumptionSkipRows rows are metadata; the row after them is the header.
// Timestamps in this workbook are raw serial dates, not datetime text.
func LoadConsumption(cfg config.DataConfig) (model.Series, error) {
	rows, err := openRows(cfg.ConsumptionFile, "")
	if err != nil {
		return model.Series{}, err
	}
	skip := cfg.ConsumptionSkipRows
	if len(rows) < skip+2 {
		return model.Series{}, fmt.Errorf("consumption workbook %s: no data rows", cfg.ConsumptionFile)
	}

	header := rows[skip]
	timeIdx, err := columnIndex(header, cfg.ConsumptionTimeColumn)
	if err != nil {
		return model.Series{}, fmt.Errorf("consumption workbook %s: %w", cfg.ConsumptionFile, err)
	}
	areaIdx, err := columnIndex(header, cfg.AreaColumn)
	if err != nil {
		return model.Series{}, fmt.Errorf("consumption workbook %s: %w", cfg.ConsumptionFile, err)
	}

	series := model.Series{Area: cfg.AreaColumn}
	for i, row := range rows[skip+1:] {
		ts := cellAt(row, timeIdx)
		val := cellAt(row, areaIdx)
		if ts == "" && val == "" {
			continue
		}
		serial, err := parseValue(ts)
		if err != nil {
			return model.Series{}, fmt.Errorf("consumption row %d: %w", skip+i+2, err)
		}
		at, err := SerialDate(serial)
		if err != nil {
			return model.Series{}, fmt.Errorf("consumption row %d: %w", skip+i+2, err)
		}
		v, err := parseValue(val)
		if err != nil {
			return model.Series{}, fmt.Errorf("consumption row %d: %w", skip+i+2, err)
		}
		series.Samples = append(series.Samples, model.Sample{At: at, Value: v})
	}
	if series.Len() == 0 {
		return model.Series{}, fmt.Errorf("consumption workbook %s: empty series", cfg.ConsumptionFile)
	}
	return series, nil
}
