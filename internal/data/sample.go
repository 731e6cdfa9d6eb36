package data

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"solar-payback/internal/config"
)

// WriteSampleWorkbooks generates three small synthetic reference spreadsheets
// under dir, matching the schema contracts the loaders expect. Used by
// cmd/gendata for local runs and by the loader tests.
func WriteSampleWorkbooks(dir string, cfg config.DataConfig) error {
	if err := writeSampleProduction(filepath.Join(dir, filepath.Base(cfg.ProductionFile)), cfg); err != nil {
		return err
	}
	if err := writeSampleConsumption(filepath.Join(dir, filepath.Base(cfg.ConsumptionFile)), cfg); err != nil {
		return err
	}
	return writeSampleWholesale(filepath.Join(dir, filepath.Base(cfg.WholesaleFile)), cfg)
}

// One synthetic day of quarter-hour per-Wp output, shaped as a daylight bell
// curve. Scaled so a few-kWp installation shows positive savings against the
// sample consumption profile.
func writeSampleProduction(path string, cfg config.DataConfig) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", cfg.ProductionSheet)

	_ = f.SetCellValue(cfg.ProductionSheet, "A1", cfg.ProductionTimeColumn)
	_ = f.SetCellValue(cfg.ProductionSheet, "B1", cfg.AreaColumn)

	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 96; i++ {
		at := start.Add(time.Duration(i) * 15 * time.Minute)
		hour := float64(i) / 4
		output := 0.0
		if hour >= 6 && hour <= 21 {
			output = 90 * math.Sin(math.Pi*(hour-6)/15)
		}
		row := i + 2
		_ = f.SetCellValue(cfg.ProductionSheet, fmt.Sprintf("A%d", row), at.Format("2006-01-02 15:04"))
		_ = f.SetCellValue(cfg.ProductionSheet, fmt.Sprintf("B%d", row), output)
	}
	return f.SaveAs(path)
}

// Half-hourly load profile normalised to sum to 1, with serial-number
// timestamps and two metadata rows before the header.
func writeSampleConsumption(path string, cfg config.DataConfig) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	_ = f.SetCellValue(sheet, "A1", "Synthetic consumption profile")
	_ = f.SetCellValue(sheet, "A2", "Normalised to annual consumption = 1 kWh")
	headerRow := cfg.ConsumptionSkipRows + 1
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", headerRow), cfg.ConsumptionTimeColumn)
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", headerRow), cfg.AreaColumn)

	// 2023-06-01 00:00 in the 1900 date system.
	const baseSerial = 45078.0
	for i := 0; i < 48; i++ {
		row := headerRow + 1 + i
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), baseSerial+float64(i)/48)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), 1.0/48)
	}
	return f.SaveAs(path)
}

// Two weeks of daily prices in €/MWh, rendered the way the source data comes:
// with currency glyphs (one of them mojibake) and a thousands separator.
func writeSampleWholesale(path string, cfg config.DataConfig) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	_ = f.SetCellValue(sheet, "A1", cfg.WholesaleDateColumn)
	_ = f.SetCellValue(sheet, "B1", cfg.WholesalePriceColumn)

	prices := []string{
		"€ 95.50", "€ 88.20", "€ 102.75", "â‚¬ 110.40", "€ 79.95",
		"€ 91.00", "€ 84.60", "€ 97.30", "€ 105.10", "€ 92.85",
		"€ 1,012.00", "€ 87.45", "€ 99.60", "€ 83.20",
	}
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range prices {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), start.AddDate(0, 0, i).Format("2006-01-02"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p)
	}
	return f.SaveAs(path)
}
