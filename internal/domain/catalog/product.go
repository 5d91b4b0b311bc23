package catalog

import (
	"github.com/shopspring/decimal"
)

// Product represents a single catalog entry available for browsing.
// Identifiers are assigned at catalog load (or by the admin editor) and
// never change for the lifetime of the entry.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Stock       int
	Rating      float64
	Reviews     int
}

// InStock returns true if the product has at least one unit available
func (p Product) InStock() bool {
	return p.Stock > 0
}

// LowStock returns true if the product stock is below the given threshold
func (p Product) LowStock(threshold int) bool {
	return p.Stock < threshold
}

// InventoryValue returns price multiplied by units on hand
func (p Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
