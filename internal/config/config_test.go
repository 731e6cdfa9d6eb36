package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "Ex-ante 2023 (IP8)", c.Data.ProductionSheet)
	assert.Equal(t, "5414492999998", c.Data.AreaColumn)
	assert.Equal(t, 2, c.Data.ConsumptionSkipRows)
	assert.Equal(t, 1.20, c.Tariff.BuyMarkup)
	assert.Equal(t, 0.80, c.Tariff.SellDiscount)
	assert.Equal(t, 0.12, c.Tariff.GridFeePerKWh)
	assert.Equal(t, 0.25, c.Calculation.ProductionIntervalHours)
	assert.Equal(t, 1000.0, c.Search.FixedCostEUR)
	assert.Equal(t, 10, c.Search.StepWp)
}

func TestLoad(t *testing.T) {
	t.Run("overrides merge onto defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
tariff:
  grid_fee_per_kwh: 0.15
search:
  step_wp: 50
`), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 0.15, c.Tariff.GridFeePerKWh)
		assert.Equal(t, 50, c.Search.StepWp)
		// Untouched fields keep their defaults.
		assert.Equal(t, 1.20, c.Tariff.BuyMarkup)
		assert.Equal(t, "Ex-ante 2023 (IP8)", c.Data.ProductionSheet)
	})

	t.Run("relative data paths resolve against the config dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.xlsx"), []byte("x"), 0o644))
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
data:
  production_file: prod.xlsx
`), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "prod.xlsx"), c.Data.ProductionFile)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		dir := t.TempDir()
		for name, body := range map[string]string{
			"negative fee":    "tariff:\n  grid_fee_per_kwh: -0.1\n",
			"zero step":       "search:\n  step_wp: 0\n",
			"zero interval":   "calculation:\n  production_interval_hours: 0\n",
			"inverted tariff": "tariff:\n  buy_markup: 0.5\n  sell_discount: 0.8\n  grid_fee_per_kwh: 0\n",
		} {
			path := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			require.Error(t, err, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}
