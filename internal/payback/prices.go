package payback

import (
	"errors"

	"solar-payback/internal/config"
	"solar-payback/internal/model"
)

// kWhPerMWh converts the source's per-MWh wholesale prices into €/kWh.
const kWhPerMWh = 1000

// DeriveGridPrices computes the effective retail prices from the wholesale
// series mean. The buy side gets the markup plus the fixed grid fee, the sell
// side the discount, so Sell < Buy holds for any non-negative series as long
// as the tariff keeps the discount below the effective markup.
func DeriveGridPrices(wholesale model.Series, tariff config.TariffConfig) (model.GridPrices, error) {
	if wholesale.Len() == 0 {
		return model.GridPrices{}, errors.New("wholesale price series is empty")
	}
	meanPerKWh := wholesale.Mean() / kWhPerMWh
	return model.GridPrices{
		Buy:  meanPerKWh*tariff.BuyMarkup + tariff.GridFeePerKWh,
		Sell: meanPerKWh * tariff.SellDiscount,
	}, nil
}
