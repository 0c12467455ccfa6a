// Package pricing aggregates product prices with fixed-precision rounding.
package pricing

import (
	"github.com/shopspring/decimal"

	"catalogapi/internal/model"
)

// costPrecision is the number of decimal places a cost is rounded to.
const costPrecision = 4

// Sum returns the exact arithmetic total of the given product prices.
// An empty sequence sums to zero.
func Sum(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(decimal.NewFromFloat(p.Price))
	}
	return total
}

// Cost returns Sum rounded half away from zero to 4 decimal places.
// Callers must pass fully resolved products only.
func Cost(products []model.Product) float64 {
	f, _ := Sum(products).Round(costPrecision).Float64()
	return f
}
