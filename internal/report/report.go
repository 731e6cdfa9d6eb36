package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"solar-payback/internal/model"
	"solar-payback/internal/payback"
)

// PaybackReport bundles one calculation's inputs and outcome for export.
type PaybackReport struct {
	AnnualConsumptionKWh float64
	InstallationCostEUR  float64
	CapacityWp           int

	Prices    model.GridPrices
	Breakdown payback.Breakdown

	// Payable is false when the installation never pays back; PaybackYears is
	// only meaningful when it is true.
	Payable      bool
	PaybackYears float64
}

func (r PaybackReport) paybackLabel() string {
	if !r.Payable {
		return "never (no annual savings)"
	}
	return fmt.Sprintf("%.1f years", r.PaybackYears)
}

// BuildXLSX renders a single-sheet workbook for a payback report.
func BuildXLSX(r PaybackReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "payback"
	f.SetSheetName("Sheet1", sheet)

	rows := [][2]any{
		{"Solar Payback Report", ""},
		{"", ""},
		{"Annual consumption (kWh)", r.AnnualConsumptionKWh},
		{"Installation cost (EUR)", r.InstallationCostEUR},
		{"Installation capacity (Wp)", r.CapacityWp},
		{"", ""},
		{"Grid buy price (EUR/kWh)", r.Prices.Buy},
		{"Grid sell price (EUR/kWh)", r.Prices.Sell},
		{"", ""},
		{"Total produced (kWh)", r.Breakdown.TotalProducedKWh},
		{"Total consumed (kWh)", r.Breakdown.TotalConsumedKWh},
		{"Energy from grid (kWh)", r.Breakdown.Flow.FromGridKWh},
		{"Energy to grid (kWh)", r.Breakdown.Flow.ToGridKWh},
		{"Cost from grid (EUR)", r.Breakdown.CostFromGrid},
		{"Revenue to grid (EUR)", r.Breakdown.RevenueToGrid},
		{"Net annual cost (EUR)", r.Breakdown.TotalCost},
		{"", ""},
		{"Payback time", r.paybackLabel()},
	}
	for i, row := range rows {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), row[0])
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row[1])
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildPDF renders a minimal PDF for a payback report.
func BuildPDF(r PaybackReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Solar Payback Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)

	lines := []string{
		fmt.Sprintf("Annual consumption: %.0f kWh", r.AnnualConsumptionKWh),
		fmt.Sprintf("Installation cost: %.2f EUR", r.InstallationCostEUR),
		fmt.Sprintf("Installation capacity: %d Wp", r.CapacityWp),
		"",
		fmt.Sprintf("Grid buy price: %.4f EUR/kWh", r.Prices.Buy),
		fmt.Sprintf("Grid sell price: %.4f EUR/kWh", r.Prices.Sell),
		"",
		fmt.Sprintf("Total produced: %.1f kWh", r.Breakdown.TotalProducedKWh),
		fmt.Sprintf("Total consumed: %.1f kWh", r.Breakdown.TotalConsumedKWh),
		fmt.Sprintf("Energy from grid: %.1f kWh", r.Breakdown.Flow.FromGridKWh),
		fmt.Sprintf("Energy to grid: %.1f kWh", r.Breakdown.Flow.ToGridKWh),
		fmt.Sprintf("Net annual cost: %.2f EUR", r.Breakdown.TotalCost),
		"",
		"Payback time: " + r.paybackLabel(),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
