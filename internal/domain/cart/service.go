// internal/domain/cart/service.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/shopmart/internal/domain/catalog"
)

// MaxQuantity is the largest quantity a single line can hold
const MaxQuantity = 999

// Cart maps product ids to line items, keeping insertion order for display.
// It holds at most one line per product and every line has a quantity in
// [1, MaxQuantity].
// Cart is not safe for concurrent use; its owner serializes access.
type Cart struct {
	lines []*Line
	index map[int]*Line
	now   func() time.Time
}

// New creates an empty cart
func New() *Cart {
	return &Cart{
		index: make(map[int]*Line),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Add increments the line for product by quantity, inserting it when absent.
// Quantities below 1 are treated as 1 and the result saturates at MaxQuantity.
func (c *Cart) Add(product catalog.Product, quantity int) Line {
	quantity = max(1, quantity)

	if line, ok := c.index[product.ID]; ok {
		line.Quantity = boundedAdd(line.Quantity, quantity)
		return line.Clone()
	}

	line := &Line{
		ProductID: product.ID,
		Product:   product.Clone(),
		Quantity:  min(quantity, MaxQuantity),
		AddedAt:   c.now(),
	}
	c.lines = append(c.lines, line)
	c.index[product.ID] = line
	return line.Clone()
}

// Remove deletes the line for productID. Absent ids are a no-op.
func (c *Cart) Remove(productID int) bool {
	if _, ok := c.index[productID]; !ok {
		return false
	}
	delete(c.index, productID)
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	return true
}

// ChangeQuantity adds delta to the line quantity, keeping it within
// [1, MaxQuantity]. Lines are only ever removed through Remove.
func (c *Cart) ChangeQuantity(productID, delta int) (Line, bool) {
	line, ok := c.index[productID]
	if !ok {
		return Line{}, false
	}
	line.Quantity = boundedAdd(line.Quantity, delta)
	return line.Clone(), true
}

// boundedAdd returns quantity+delta clamped to [1, MaxQuantity] without
// overflowing for any delta. quantity must already be in range.
func boundedAdd(quantity, delta int) int {
	switch {
	case delta >= MaxQuantity-quantity:
		return MaxQuantity
	case delta <= 1-quantity:
		return 1
	default:
		return quantity + delta
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[int]*Line)
}

// Lines returns a snapshot of the lines in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	for i, line := range c.lines {
		out[i] = line.Clone()
	}
	return out
}

// Get returns a snapshot of one line
func (c *Cart) Get(productID int) (Line, bool) {
	line, ok := c.index[productID]
	if !ok {
		return Line{}, false
	}
	return line.Clone(), true
}

// TotalPrice is the sum of price × quantity over all lines
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// TotalItems is the sum of quantities over all lines
func (c *Cart) TotalItems() int {
	items := 0
	for _, line := range c.lines {
		items += line.Quantity
	}
	return items
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Totals returns the derived totals
func (c *Cart) Totals() Totals {
	return Totals{
		LineCount:  c.Len(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
