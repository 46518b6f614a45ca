// internal/interfaces/http/handlers/helpers.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopmart/internal/domain/storefront"
	"github.com/your-org/shopmart/internal/interfaces/http/middleware"
)

// requireSession returns the request's session or answers 500 when the
// session middleware did not run
func requireSession(c *gin.Context) (*storefront.Session, bool) {
	session := middleware.GetSession(c)
	if session == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Session not available",
		})
		return nil, false
	}
	return session, true
}

// parseProductID reads the :id path parameter
func parseProductID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return id, true
}
