// internal/domain/checkout/entity.go
package checkout

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Step is a stage of the checkout wizard
type Step int

const (
	StepShippingInfo Step = iota + 1
	StepPaymentInfo
	StepReview
)

// String returns the wire name of the step
func (s Step) String() string {
	switch s {
	case StepShippingInfo:
		return "shipping_info"
	case StepPaymentInfo:
		return "payment_info"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// MarshalText encodes the step by name
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a step name
func (s *Step) UnmarshalText(text []byte) error {
	for _, step := range []Step{StepShippingInfo, StepPaymentInfo, StepReview} {
		if step.String() == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown checkout step %q", text)
}

// ShippingForm is the first wizard step
type ShippingForm struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	ZipCode *string `json:"zip_code"`
}

// PaymentForm is the second wizard step. Values are display strings only.
type PaymentForm struct {
	CardNumber *string `json:"card_number"`
	ExpiryDate *string `json:"expiry_date"`
	CVV        *string `json:"cvv"`
}

// Confirmation is the transient banner shown after an order is placed
type Confirmation struct {
	OrderID    string          `json:"order_id"`
	TrackingID string          `json:"tracking_id"`
	Total      decimal.Decimal `json:"total"`
	ShownAt    time.Time       `json:"shown_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
}

// Visible reports whether the banner is still on screen at now
func (c *Confirmation) Visible(now time.Time) bool {
	return c != nil && now.Before(c.ExpiresAt)
}
