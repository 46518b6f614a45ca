// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"github.com/your-org/shopmart/internal/domain/catalog"
)

// Entry is a wishlisted product with enough of a snapshot to render it
type Entry struct {
	ProductID int             `json:"product_id"`
	Product   catalog.Product `json:"product"`
	AddedAt   time.Time       `json:"added_at"`
}
