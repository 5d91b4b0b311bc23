package cart

import (
	"github.com/shopspring/decimal"

	"github.com/shopverse/storefront/internal/domain/catalog"
)

// Line is one product's entry in the cart. It snapshots the product fields
// needed for display and pricing at the time of the first add, so the cart
// never has to re-query the catalog.
type Line struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Image     string
	Category  string
	Stock     int
	Quantity  int
}

// Total returns price multiplied by quantity for this line
func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the current set of cart lines in insertion order.
// Invariants: at most one line per product identifier, and every line has
// quantity >= 1 (a line driven to zero or below is removed, not retained).
//
// The cart deliberately enforces no stock ceiling: repeated adds past the
// snapshotted stock succeed, and any clamping is left to display layers.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add adds one unit of the given product. If a line for the product already
// exists its quantity is incremented, otherwise a new line with quantity 1
// is appended. Returns the resulting line and whether it was newly created.
func (c *Cart) Add(p catalog.Product) (Line, bool) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return c.lines[i], false
		}
	}

	line := Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Stock:     p.Stock,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	return line, true
}

// Remove deletes the line for the given product identifier. It returns the
// removed line and true when one existed, and is a no-op otherwise.
func (c *Cart) Remove(productID int) (Line, bool) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			removed := c.lines[i]
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return removed, true
		}
	}
	return Line{}, false
}

// SetQuantity replaces the quantity of the line for the given product.
// A quantity of zero or less behaves exactly like Remove. Setting a
// quantity on an absent line is a no-op.
func (c *Cart) SetQuantity(productID, quantity int) (Line, bool) {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return c.lines[i], true
		}
	}
	return Line{}, false
}

// Clear removes all lines unconditionally
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order
func (c *Cart) Lines() []Line {
	copied := make([]Line, len(c.lines))
	copy(copied, c.lines)
	return copied
}

// Count returns the sum of quantities over all lines
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Subtotal returns the sum of price x quantity over all lines
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.Total())
	}
	return subtotal
}

// IsEmpty returns true when the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
