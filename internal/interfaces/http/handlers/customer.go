// internal/interfaces/http/handlers/customer.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes the checkout pre-fill. Edits go through the
// checkout wizard steps.
type CustomerHandler struct{}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler() *CustomerHandler {
	return &CustomerHandler{}
}

// GetCustomer handles GET /customer
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer info retrieved successfully",
		"data":    session.Customer(),
	})
}
