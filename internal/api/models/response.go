package models

import "time"

// CalculationResponse wraps a successful calculation result.
type CalculationResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// PaybackData is the payload of a payback-time calculation.
type PaybackData struct {
	// PaybackTime in years.
	PaybackTime float64 `json:"payback_time"`
}

// OptimalWpData is the payload of an optimal-capacity calculation.
type OptimalWpData struct {
	OptimalWp int `json:"optimal_wp"`
}

// ProfileInfo describes one loaded reference series.
type ProfileInfo struct {
	Name    string    `json:"name"`
	Area    string    `json:"area"`
	Samples int       `json:"samples"`
	Start   time.Time `json:"window_start"`
	End     time.Time `json:"window_end"`
	Sum     float64   `json:"sum"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
