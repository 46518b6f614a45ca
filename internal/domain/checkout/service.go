// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/your-org/shopmart/internal/domain/cart"
	"github.com/your-org/shopmart/internal/domain/order"
)

var (
	ErrWizardInactive = errors.New("checkout has not been started")
	ErrInvalidStep    = errors.New("invalid checkout step transition")
	ErrEmptyCart      = errors.New("cart is empty")
)

// Wizard is the linear shipping → payment → review state machine. It is not
// safe for concurrent use.
type Wizard struct {
	active bool
	step   Step
}

// NewWizard returns an inactive wizard
func NewWizard() *Wizard {
	return &Wizard{step: StepShippingInfo}
}

// Active reports whether checkout is in progress
func (w *Wizard) Active() bool {
	return w.active
}

// Step returns the current step
func (w *Wizard) Step() Step {
	return w.step
}

// Begin enters the wizard, always at the shipping step
func (w *Wizard) Begin(c *cart.Cart) error {
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	w.active = true
	w.step = StepShippingInfo
	return nil
}

// Next advances one step. Review has no next step; it can only be confirmed.
func (w *Wizard) Next() (Step, error) {
	if !w.active {
		return w.step, ErrWizardInactive
	}
	if w.step == StepReview {
		return w.step, fmt.Errorf("%w: no step after %s", ErrInvalidStep, w.step)
	}
	w.step++
	return w.step, nil
}

// Back returns to the previous step
func (w *Wizard) Back() (Step, error) {
	if !w.active {
		return w.step, ErrWizardInactive
	}
	if w.step == StepShippingInfo {
		return w.step, fmt.Errorf("%w: no step before %s", ErrInvalidStep, w.step)
	}
	w.step--
	return w.step, nil
}

// Cancel leaves the wizard without placing an order
func (w *Wizard) Cancel() {
	w.active = false
	w.step = StepShippingInfo
}

// Require checks that the wizard is on the given step
func (w *Wizard) Require(step Step) error {
	if !w.active {
		return ErrWizardInactive
	}
	if w.step != step {
		return fmt.Errorf("%w: on %s, expected %s", ErrInvalidStep, w.step, step)
	}
	return nil
}

// Confirm commits the checkout from the review step: it snapshots the cart
// into a new order, prepends it to history, clears the cart, leaves the
// wizard and returns the confirmation banner. Nothing is mutated on error.
func (w *Wizard) Confirm(c *cart.Cart, history *order.History, customer order.CustomerInfo, ids order.IDGenerator, now time.Time, bannerTTL time.Duration) (*order.Order, *Confirmation, error) {
	if err := w.Require(StepReview); err != nil {
		return nil, nil, err
	}
	if c.IsEmpty() {
		return nil, nil, ErrEmptyCart
	}

	placed := order.New(ids.NextOrderID(), ids.NextTrackingID(), c.Lines(), customer, now)
	history.Prepend(placed)
	c.Clear()
	w.Cancel()

	banner := &Confirmation{
		OrderID:    placed.ID,
		TrackingID: placed.TrackingID,
		Total:      placed.Total(),
		ShownAt:    now,
		ExpiresAt:  now.Add(bannerTTL),
	}
	return placed, banner, nil
}

// ApplyShipping copies the provided shipping fields onto customer
func ApplyShipping(customer *order.CustomerInfo, form ShippingForm) {
	set(&customer.Name, form.Name)
	set(&customer.Email, form.Email)
	set(&customer.Address, form.Address)
	set(&customer.City, form.City)
	set(&customer.ZipCode, form.ZipCode)
}

// ApplyPayment copies the provided payment fields onto customer
func ApplyPayment(customer *order.CustomerInfo, form PaymentForm) {
	set(&customer.CardNumber, form.CardNumber)
	set(&customer.ExpiryDate, form.ExpiryDate)
	set(&customer.CVV, form.CVV)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
