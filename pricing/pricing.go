// Package pricing computes cart and order totals. It is pure: the same line
// items and catalog prices always produce the same quote.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// Orders above this subtotal (PLN) ship for free, everything else pays
	// the flat rate.
	FreeShippingThreshold = 100
	FlatShippingCost      = 15
)

// LineItem is a (product, weight, quantity) tuple to be priced.
type LineItem struct {
	ProductID string
	Weight    int // grams
	Quantity  int
}

// PricedLine carries the price computed for one line.
type PricedLine struct {
	ProductID string
	Weight    int
	Quantity  int
	Price     decimal.Decimal
}

// Quote is the full breakdown for a set of lines.
// Total = Subtotal + ShippingCost, always.
type Quote struct {
	Lines        []PricedLine
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
}

// ProductNotFoundError fails a whole computation when any referenced product
// is missing from the supplied catalog prices.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// LinePrice is (pricePer100g / 100) * weight * quantity, rounded to grosze.
func LinePrice(pricePer100g float64, weight, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(pricePer100g).
		Mul(decimal.NewFromInt(int64(weight) * int64(quantity))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

// Compute prices every line against pricePer100g (keyed by product id) and
// derives subtotal, shipping and grand total. A single unknown product id
// aborts the whole quote; no partial result is returned.
func Compute(items []LineItem, pricePer100g map[string]float64) (*Quote, error) {
	q := &Quote{
		Subtotal: decimal.Zero,
		Lines:    make([]PricedLine, 0, len(items)),
	}

	for _, item := range items {
		price, ok := pricePer100g[item.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: item.ProductID}
		}
		line := PricedLine{
			ProductID: item.ProductID,
			Weight:    item.Weight,
			Quantity:  item.Quantity,
			Price:     LinePrice(price, item.Weight, item.Quantity),
		}
		q.Lines = append(q.Lines, line)
		q.Subtotal = q.Subtotal.Add(line.Price)
	}

	if q.Subtotal.GreaterThan(decimal.NewFromInt(FreeShippingThreshold)) {
		q.ShippingCost = decimal.Zero
	} else {
		q.ShippingCost = decimal.NewFromInt(FlatShippingCost)
	}
	q.Total = q.Subtotal.Add(q.ShippingCost)

	return q, nil
}
