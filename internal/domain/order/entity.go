// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/shopmart/internal/domain/cart"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// TaxRate is the fixed sales tax applied to every order
var TaxRate = decimal.RequireFromString("0.10")

// CustomerInfo is the shipping and payment form. Every field is an opaque
// display string; nothing is validated or charged.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	ZipCode    string `json:"zip_code"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// DefaultCustomerInfo is the demo customer used to pre-fill checkout
func DefaultCustomerInfo() CustomerInfo {
	return CustomerInfo{
		Name:       "Alex Johnson",
		Email:      "alex.johnson@example.com",
		Address:    "123 Main Street",
		City:       "New York",
		ZipCode:    "10001",
		CardNumber: "**** **** **** 1234",
		ExpiryDate: "12/25",
		CVV:        "***",
	}
}

// Pricing represents the order pricing breakdown
type Pricing struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// PriceSubtotal applies free shipping and the fixed tax rate to a subtotal
func PriceSubtotal(subtotal decimal.Decimal) Pricing {
	tax := subtotal.Mul(TaxRate).Round(2)
	return Pricing{
		Subtotal:     subtotal,
		ShippingCost: decimal.Zero,
		TaxAmount:    tax,
		TotalAmount:  subtotal.Add(tax),
	}
}

// Order is an immutable record of a completed checkout
type Order struct {
	ID         string       `json:"id"`
	TrackingID string       `json:"tracking_id"`
	Items      []cart.Line  `json:"items"`
	Pricing    Pricing      `json:"pricing"`
	Status     OrderStatus  `json:"status"`
	Customer   CustomerInfo `json:"customer"`
	PlacedAt   time.Time    `json:"placed_at"`
}

// New builds an order from a snapshot of cart lines
func New(id, trackingID string, lines []cart.Line, customer CustomerInfo, placedAt time.Time) *Order {
	items := make([]cart.Line, len(lines))
	subtotal := decimal.Zero
	for i, line := range lines {
		items[i] = line.Clone()
		subtotal = subtotal.Add(line.Subtotal())
	}

	return &Order{
		ID:         id,
		TrackingID: trackingID,
		Items:      items,
		Pricing:    PriceSubtotal(subtotal),
		Status:     OrderStatusProcessing,
		Customer:   customer,
		PlacedAt:   placedAt,
	}
}

// Total returns the amount charged including tax
func (o *Order) Total() decimal.Decimal {
	return o.Pricing.TotalAmount
}

// ItemCount returns the number of units in the order
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// Clone returns a deep copy
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]cart.Line, len(o.Items))
	for i, item := range o.Items {
		c.Items[i] = item.Clone()
	}
	return &c
}
