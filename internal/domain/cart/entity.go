// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/shopmart/internal/domain/catalog"
)

// Line is a cart entry pairing a product snapshot with a quantity
type Line struct {
	ProductID int             `json:"product_id"`
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// Subtotal returns price × quantity for the line
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Clone returns a deep copy of the line
func (l Line) Clone() Line {
	l.Product = l.Product.Clone()
	return l
}

// Totals represents calculated cart totals
type Totals struct {
	LineCount  int             `json:"line_count"`  // Number of distinct products
	TotalItems int             `json:"total_items"` // Sum of all quantities
	TotalPrice decimal.Decimal `json:"total_price"` // Sum of price × quantity
}
