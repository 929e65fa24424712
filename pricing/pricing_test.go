package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrice(t *testing.T) {
	tests := []struct {
		name         string
		pricePer100g float64
		weight       int
		quantity     int
		want         string
	}{
		{"one hundred grams", 8.0, 100, 1, "8"},
		{"double quantity", 8.0, 100, 2, "16"},
		{"fractional weight share", 9.0, 250, 1, "22.5"},
		{"rounds to grosze", 9.99, 333, 1, "33.27"},
		{"heavy line", 10.0, 1000, 3, "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinePrice(tt.pricePer100g, tt.weight, tt.quantity)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"LinePrice = %s, want %s", got, tt.want)
		})
	}
}

func TestComputeSmallCartPaysFlatShipping(t *testing.T) {
	// 2 x 100g of gummy bears at 8 zł/100g: subtotal 16, under the free
	// shipping threshold.
	items := []LineItem{{ProductID: "gummy-bear", Weight: 100, Quantity: 2}}
	prices := map[string]float64{"gummy-bear": 8.0}

	quote, err := Compute(items, prices)
	require.NoError(t, err)

	assert.Equal(t, 16.0, quote.Subtotal.InexactFloat64())
	assert.Equal(t, float64(FlatShippingCost), quote.ShippingCost.InexactFloat64())
	assert.Equal(t, 31.0, quote.Total.InexactFloat64())
}

func TestComputeFreeShippingAboveThreshold(t *testing.T) {
	items := []LineItem{{ProductID: "berry", Weight: 500, Quantity: 3}}
	prices := map[string]float64{"berry": 10.0} // subtotal 150

	quote, err := Compute(items, prices)
	require.NoError(t, err)

	assert.Equal(t, 150.0, quote.Subtotal.InexactFloat64())
	assert.True(t, quote.ShippingCost.IsZero())
	assert.Equal(t, 150.0, quote.Total.InexactFloat64())
}

func TestComputeThresholdIsExclusive(t *testing.T) {
	// Exactly 100 still pays shipping; free shipping needs subtotal > 100.
	items := []LineItem{{ProductID: "bear", Weight: 1000, Quantity: 1}}
	prices := map[string]float64{"bear": 10.0}

	quote, err := Compute(items, prices)
	require.NoError(t, err)

	assert.Equal(t, 100.0, quote.Subtotal.InexactFloat64())
	assert.Equal(t, float64(FlatShippingCost), quote.ShippingCost.InexactFloat64())
	assert.Equal(t, 115.0, quote.Total.InexactFloat64())
}

func TestComputeUnknownProductFailsWholeQuote(t *testing.T) {
	items := []LineItem{
		{ProductID: "bear", Weight: 100, Quantity: 1},
		{ProductID: "missing-id", Weight: 100, Quantity: 1},
	}
	prices := map[string]float64{"bear": 8.0}

	quote, err := Compute(items, prices)
	assert.Nil(t, quote)

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing-id", notFound.ProductID)
}

func TestComputeIsDeterministic(t *testing.T) {
	items := []LineItem{
		{ProductID: "worm", Weight: 150, Quantity: 2},
		{ProductID: "bear", Weight: 250, Quantity: 1},
		{ProductID: "shark", Weight: 100, Quantity: 5},
	}
	prices := map[string]float64{"worm": 9.0, "bear": 8.0, "shark": 9.0}

	first, err := Compute(items, prices)
	require.NoError(t, err)
	second, err := Compute(items, prices)
	require.NoError(t, err)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.ShippingCost.Equal(second.ShippingCost))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestComputeSubtotalIsSumOfLines(t *testing.T) {
	items := []LineItem{
		{ProductID: "worm", Weight: 333, Quantity: 2},
		{ProductID: "bear", Weight: 125, Quantity: 3},
		{ProductID: "rainbow", Weight: 77, Quantity: 1},
	}
	prices := map[string]float64{"worm": 9.99, "bear": 8.5, "rainbow": 8.0}

	quote, err := Compute(items, prices)
	require.NoError(t, err)
	require.Len(t, quote.Lines, len(items))

	sum := decimal.Zero
	for _, line := range quote.Lines {
		sum = sum.Add(line.Price)
	}
	assert.True(t, quote.Subtotal.Equal(sum), "subtotal %s != sum of lines %s", quote.Subtotal, sum)
	assert.True(t, quote.Total.Equal(quote.Subtotal.Add(quote.ShippingCost)))
}
