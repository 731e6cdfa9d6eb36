package payback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-payback/internal/config"
	"solar-payback/internal/payback"
)

func TestDeriveGridPrices(t *testing.T) {
	tariff := config.Default().Tariff

	t.Run("default tariff on a 100 EUR/MWh mean", func(t *testing.T) {
		prices, err := payback.DeriveGridPrices(seriesOf(90, 110), tariff)
		require.NoError(t, err)
		// 0.1 €/kWh mean: buy = 0.1*1.20 + 0.12, sell = 0.1*0.80.
		assert.InDelta(t, 0.24, prices.Buy, 1e-9)
		assert.InDelta(t, 0.08, prices.Sell, 1e-9)
	})

	t.Run("sell stays below buy for non-negative series", func(t *testing.T) {
		for _, s := range [][]float64{
			{0, 0, 0},
			{1},
			{50, 150, 250},
			{1000, 2000},
			{0.01},
		} {
			prices, err := payback.DeriveGridPrices(seriesOf(s...), tariff)
			require.NoError(t, err)
			assert.Less(t, prices.Sell, prices.Buy, "series %v", s)
		}
	})

	t.Run("tariff constants are substitutable", func(t *testing.T) {
		prices, err := payback.DeriveGridPrices(seriesOf(100), config.TariffConfig{
			BuyMarkup:     2.0,
			SellDiscount:  0.5,
			GridFeePerKWh: 0.01,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.21, prices.Buy, 1e-9)
		assert.InDelta(t, 0.05, prices.Sell, 1e-9)
	})

	t.Run("empty series is an error", func(t *testing.T) {
		_, err := payback.DeriveGridPrices(seriesOf(), tariff)
		require.Error(t, err)
	})
}
