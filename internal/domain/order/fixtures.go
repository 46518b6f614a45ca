// internal/domain/order/fixtures.go
package order

import (
	"time"

	"github.com/your-org/shopmart/internal/domain/cart"
	"github.com/your-org/shopmart/internal/domain/catalog"
)

var fixtureStatuses = []OrderStatus{OrderStatusDelivered, OrderStatusShipped, OrderStatusProcessing}

// SeedFixtures fills an empty history with demo orders built from the first
// catalog products: quantity i+1, newest first. Each fixture is back-dated
// 2·i days plus the time its status needs, so every completed tracking
// stage lies in the past.
func SeedFixtures(h *History, products []catalog.Product, ids IDGenerator, customer CustomerInfo, now time.Time) int {
	n := min(len(products), len(fixtureStatuses))

	// Prepend oldest first so the newest fixture ends up at the front.
	for i := n - 1; i >= 0; i-- {
		p := products[i]
		status := fixtureStatuses[i]
		line := cart.Line{
			ProductID: p.ID,
			Product:   p.Clone(),
			Quantity:  i + 1,
			AddedAt:   now.Add(-time.Duration(i)*48*time.Hour - stageSpan(status)),
		}
		o := New(ids.NextOrderID(), ids.NextTrackingID(), []cart.Line{line}, customer, line.AddedAt)
		o.Status = status
		h.Prepend(o)
	}
	return n
}
