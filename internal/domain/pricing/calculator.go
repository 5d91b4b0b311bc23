package pricing

import "github.com/shopspring/decimal"

// OrderSummary is the derived cost breakdown for the current cart subtotal.
// All values carry full precision; rounding happens only at presentation.
type OrderSummary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculator derives an order summary from a subtotal. Shipping is waived
// strictly above the free-shipping threshold, otherwise a flat rate applies.
type Calculator struct {
	freeShippingThreshold decimal.Decimal
	flatShippingRate      decimal.Decimal
	taxRate               decimal.Decimal
}

// NewCalculator creates a calculator with the given pricing constants
func NewCalculator(freeShippingThreshold, flatShippingRate, taxRate decimal.Decimal) *Calculator {
	return &Calculator{
		freeShippingThreshold: freeShippingThreshold,
		flatShippingRate:      flatShippingRate,
		taxRate:               taxRate,
	}
}

// NewDefaultCalculator creates a calculator with the standard storefront
// rules: free shipping above 50.00, 9.99 flat rate otherwise, 8% tax.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(
		decimal.NewFromInt(50),
		decimal.NewFromFloat(9.99),
		decimal.NewFromFloat(0.08),
	)
}

// Summarize derives the order summary for the given subtotal
func (c *Calculator) Summarize(subtotal decimal.Decimal) OrderSummary {
	shipping := c.flatShippingRate
	if subtotal.GreaterThan(c.freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(c.taxRate)

	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
