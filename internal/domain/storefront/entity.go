// internal/domain/storefront/entity.go
package storefront

import (
	"github.com/your-org/shopmart/internal/domain/cart"
	"github.com/your-org/shopmart/internal/domain/checkout"
	"github.com/your-org/shopmart/internal/domain/order"
	"github.com/your-org/shopmart/internal/domain/view"
)

// ProductPage is the derived product listing for one session
type ProductPage struct {
	view.Page
	Loading bool       `json:"loading"`
	View    view.State `json:"view"`
}

// CartResponse represents a shopping cart with items and summary
type CartResponse struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

// CheckoutState is the wizard as seen by the client, with the order summary
// that would be committed right now
type CheckoutState struct {
	Active   bool               `json:"active"`
	Step     checkout.Step      `json:"step"`
	Customer order.CustomerInfo `json:"customer"`
	Items    []cart.Line        `json:"items"`
	Summary  order.Pricing      `json:"summary"`
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

// ChangeQuantityRequest carries a signed quantity delta
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// UpdateViewRequest represents a partial update of the list controls
type UpdateViewRequest struct {
	Search   *string `json:"search"`
	Category *string `json:"category"`
	Sort     *string `json:"sort"`
	Mode     *string `json:"mode"`
}

// NavigateRequest selects the current screen
type NavigateRequest struct {
	Screen string `json:"screen" binding:"required"`
}
