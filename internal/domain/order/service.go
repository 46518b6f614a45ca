// internal/domain/order/service.go
package order

import (
	"errors"
	"strings"
)

// ErrOrderNotFound is returned when an order id is not in the history
var ErrOrderNotFound = errors.New("order not found")

// History is the append-only list of placed orders, newest first, with a
// tracking-id index. It is not safe for concurrent use.
type History struct {
	orders     []*Order
	byTracking map[string]*Order
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{
		byTracking: make(map[string]*Order),
	}
}

// Prepend records a new order at the front of the history
func (h *History) Prepend(o *Order) {
	stored := o.Clone()
	h.orders = append([]*Order{stored}, h.orders...)
	h.byTracking[normalizeTrackingID(o.TrackingID)] = stored
}

// List returns snapshots of every order, newest first
func (h *History) List() []*Order {
	out := make([]*Order, len(h.orders))
	for i, o := range h.orders {
		out[i] = o.Clone()
	}
	return out
}

// Recent returns at most n of the newest orders
func (h *History) Recent(n int) []*Order {
	if n > len(h.orders) {
		n = len(h.orders)
	}
	out := make([]*Order, 0, n)
	for _, o := range h.orders[:n] {
		out = append(out, o.Clone())
	}
	return out
}

// Get returns the order with the given id
func (h *History) Get(id string) (*Order, error) {
	for _, o := range h.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return nil, ErrOrderNotFound
}

// FindByTracking looks up an order by tracking id. A miss is a normal
// outcome and is reported through ok.
func (h *History) FindByTracking(trackingID string) (*Order, bool) {
	o, ok := h.byTracking[normalizeTrackingID(trackingID)]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// Len returns the number of orders
func (h *History) Len() int {
	return len(h.orders)
}

func normalizeTrackingID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
