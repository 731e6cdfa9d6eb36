package data

import (
	"fmt"

	"solar-payback/internal/config"
	"solar-payback/internal/model"
)

// LoadWholesale reads the daily wholesale price series. Price cells may carry
// currency glyphs and thousands separators, stripped by parsePrice.
func LoadWholesale(cfg config.DataConfig) (model.Series, error) {
	rows, err := openRows(cfg.WholesaleFile, "")
	if err != nil {
		return model.Series{}, err
	}
	if len(rows) < 2 {
		return model.Series{}, fmt.Errorf("wholesale workbook %s: no data rows", cfg.WholesaleFile)
	}

	dateIdx, err := columnIndex(rows[0], cfg.WholesaleDateColumn)
	if err != nil {
		return model.Series{}, fmt.Errorf("wholesale workbook %s: %w", cfg.WholesaleFile, err)
	}
	priceIdx, err := columnIndex(rows[0], cfg.WholesalePriceColumn)
	if err != nil {
		return model.Series{}, fmt.Errorf("wholesale workbook %s: %w", cfg.WholesaleFile, err)
	}

	series := model.Series{Area: cfg.WholesalePriceColumn}
	for i, row := range rows[1:] {
		ts := cellAt(row, dateIdx)
		val := cellAt(row, priceIdx)
		if ts == "" && val == "" {
			continue
		}
		at, err := parseTimestamp(ts)
		if err != nil {
			return model.Series{}, fmt.Errorf("wholesale row %d: %w", i+2, err)
		}
		v, err := parsePrice(val)
		if err != nil {
			return model.Series{}, fmt.Errorf("wholesale row %d: %w", i+2, err)
		}
		series.Samples = append(series.Samples, model.Sample{At: at, Value: v})
	}
	if series.Len() == 0 {
		return model.Series{}, fmt.Errorf("wholesale workbook %s: empty series", cfg.WholesaleFile)
	}
	return series, nil
}
