// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopmart/internal/domain/checkout"
	"github.com/your-org/shopmart/internal/domain/storefront"
)

// CheckoutHandler handles the checkout wizard endpoints
type CheckoutHandler struct{}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler() *CheckoutHandler {
	return &CheckoutHandler{}
}

// respondCheckout writes the wizard state or maps a wizard error
func respondCheckout(c *gin.Context, message string, state storefront.CheckoutState, err error) {
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, checkout.ErrEmptyCart) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":   checkoutErrorMessage(err),
			"details": err.Error(),
			"data":    state,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    state,
	})
}

func checkoutErrorMessage(err error) string {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return "Cart is empty"
	case errors.Is(err, checkout.ErrWizardInactive):
		return "Checkout has not been started"
	case errors.Is(err, checkout.ErrInvalidStep):
		return "Invalid checkout step"
	default:
		return "Checkout failed"
	}
}

// BeginCheckout handles POST /checkout
func (h *CheckoutHandler) BeginCheckout(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	state, err := session.BeginCheckout()
	respondCheckout(c, "Checkout started", state, err)
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	respondCheckout(c, "Checkout retrieved successfully", session.Checkout(), nil)
}

// UpdateShipping handles PUT /checkout/shipping
func (h *CheckoutHandler) UpdateShipping(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req checkout.ShippingForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := session.UpdateShipping(req)
	respondCheckout(c, "Shipping information updated", state, err)
}

// UpdatePayment handles PUT /checkout/payment
func (h *CheckoutHandler) UpdatePayment(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req checkout.PaymentForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := session.UpdatePayment(req)
	respondCheckout(c, "Payment information updated", state, err)
}

// NextStep handles POST /checkout/next
func (h *CheckoutHandler) NextStep(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	state, err := session.NextStep()
	respondCheckout(c, "Moved to next step", state, err)
}

// PreviousStep handles POST /checkout/back
func (h *CheckoutHandler) PreviousStep(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	state, err := session.PreviousStep()
	respondCheckout(c, "Moved to previous step", state, err)
}

// CancelCheckout handles DELETE /checkout
func (h *CheckoutHandler) CancelCheckout(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	session.CancelCheckout()
	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout cancelled",
	})
}

// ConfirmCheckout handles POST /checkout/confirm
func (h *CheckoutHandler) ConfirmCheckout(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	placed, banner, err := session.ConfirmCheckout()
	if err != nil {
		respondCheckout(c, "", session.Checkout(), err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"order":        placed,
			"confirmation": banner,
		},
	})
}

// GetConfirmation handles GET /checkout/confirmation
func (h *CheckoutHandler) GetConfirmation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	banner, visible := session.Confirmation()
	if !visible {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No recent order confirmation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order confirmed",
		"data":    banner,
	})
}
