package data

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// SerialDate converts a legacy spreadsheet serial date (1900 date system,
// day-count 0) to a calendar time. All date decoding in the loaders funnels
// through this function so the rest of the package stays encoding-agnostic.
func SerialDate(serial float64) (time.Time, error) {
	if serial < 0 {
		return time.Time{}, fmt.Errorf("negative serial date %v", serial)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("serial date %v: %w", serial, err)
	}
	return t, nil
}
