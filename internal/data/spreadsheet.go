package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// timestampLayouts are the textual datetime formats accepted in timestamp
// columns, tried in order. Values that match none of them are treated as
// Excel serial dates.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01-02-06 15:04",
}

func openRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

// columnIndex finds the 0-based position of a header cell, matching on the
// trimmed cell text.
func columnIndex(header []string, name string) (int, error) {
	for i, cell := range header {
		if strings.TrimSpace(cell) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header %v", name, header)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseTimestamp parses a timestamp cell, accepting both textual datetimes and
// raw Excel serial numbers.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return SerialDate(serial)
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// parsePrice parses a price cell that may carry a currency glyph (in any
// mis-encoded form) and thousands separators. Every rune that is not a digit,
// decimal point or sign is stripped before parsing.
func parsePrice(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric content in price %q", s)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", s, err)
	}
	return v, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable value %q: %w", s, err)
	}
	return v, nil
}
