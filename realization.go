package cashflow

import "github.com/shopspring/decimal"

// RealizationRates derives, for each SKU, the historical ratio of
// approved to forecast amounts: how much of what was forecast actually
// materialized.
//
// A SKU with no forecast rows, or whose forecast-side sum is zero, has
// no defined ratio and is absent from the map; callers fall back to a
// configured default with RateOr instead of dividing by zero. Ratios
// are not clamped: a SKU whose confirmed revenue exceeds its forecast
// yields a ratio above 1, which is meaningful over-performance.
//
// Categories that do not follow the "Sales <SKU>" pattern are excluded
// here but still count in balance aggregation.
func RealizationRates(l *Ledger) map[string]decimal.Decimal {
	approved := make(map[string]decimal.Decimal)
	forecast := make(map[string]decimal.Decimal)

	for _, tx := range l.Transactions() {
		sku, ok := SKU(tx.Category)
		if !ok {
			continue
		}
		switch tx.Status {
		case Approved:
			approved[sku] = approved[sku].Add(tx.Amount)
		case Forecast:
			forecast[sku] = forecast[sku].Add(tx.Amount)
		}
	}

	rates := make(map[string]decimal.Decimal)
	for sku, f := range forecast {
		if f.IsZero() {
			continue
		}
		rates[sku] = approved[sku].Div(f)
	}
	return rates
}

// RateOr returns the realization rate for sku, or fallback when the
// rate is undefined for that key.
func RateOr(rates map[string]decimal.Decimal, sku string, fallback decimal.Decimal) decimal.Decimal {
	if rate, ok := rates[sku]; ok {
		return rate
	}
	return fallback
}
