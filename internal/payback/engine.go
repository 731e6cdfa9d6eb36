package payback

import (
	"errors"
	"fmt"

	"solar-payback/internal/config"
	"solar-payback/internal/model"
)

// ErrNeverPaysBack is the sentinel for a degenerate calculation: the requested
// installation yields zero or negative annual savings, so there is no finite
// payback time. It is a normal, documented outcome, not an internal failure.
var ErrNeverPaysBack = errors.New("annual savings are zero or negative, the installation never pays back")

// ErrInvalidInput wraps argument errors so the boundary can distinguish bad
// requests from internal failures.
var ErrInvalidInput = errors.New("invalid input")

// wattsPerKilowatt converts the Wp-scaled production sum into kWh calibration.
const wattsPerKilowatt = 1000

// Engine evaluates the annual cost and payback time of a hypothetical solar
// installation against the historical reference profiles. All fields are set
// once at construction and never mutated, so a single Engine is safe for any
// number of concurrent calculations.
type Engine struct {
	// productionSumPerWp is the per-Wp production profile summed over the
	// historical window (dimensionless sample units).
	productionSumPerWp float64
	// consumptionSumPerKWh is the normalised load profile summed over the
	// window; multiplied by the requested annual consumption.
	consumptionSumPerKWh float64

	prices        model.GridPrices
	intervalHours float64
	fixedCostEUR  float64
	stepWp        int
}

// New derives the grid prices from the wholesale series and precomputes the
// profile sums. The reference data is consumed here; the Engine holds no
// reference to it afterwards.
func New(ref *model.ReferenceData, cfg *config.Config) (*Engine, error) {
	if ref == nil {
		return nil, errors.New("reference data is nil")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	prices, err := DeriveGridPrices(ref.Wholesale, cfg.Tariff)
	if err != nil {
		return nil, err
	}
	if ref.Production.Len() == 0 {
		return nil, errors.New("production series is empty")
	}
	if ref.Consumption.Len() == 0 {
		return nil, errors.New("consumption series is empty")
	}
	return &Engine{
		productionSumPerWp:   ref.Production.Sum(),
		consumptionSumPerKWh: ref.Consumption.Sum(),
		prices:               prices,
		intervalHours:        cfg.Calculation.ProductionIntervalHours,
		fixedCostEUR:         cfg.Search.FixedCostEUR,
		stepWp:               cfg.Search.StepWp,
	}, nil
}

// GridPrices returns the derived buy/sell prices.
func (e *Engine) GridPrices() model.GridPrices { return e.prices }

func validatePositive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidInput, name, v)
	}
	return nil
}
