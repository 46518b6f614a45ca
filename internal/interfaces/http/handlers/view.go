// internal/interfaces/http/handlers/view.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopmart/internal/domain/storefront"
	"github.com/your-org/shopmart/internal/domain/view"
)

// ViewHandler handles navigation and list control endpoints
type ViewHandler struct{}

// NewViewHandler creates a new view handler
func NewViewHandler() *ViewHandler {
	return &ViewHandler{}
}

// GetView handles GET /view
func (h *ViewHandler) GetView(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "View retrieved successfully",
		"data":    session.View(),
	})
}

// UpdateView handles PATCH /view
func (h *ViewHandler) UpdateView(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req storefront.UpdateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	filters := view.Filters{
		Search:   req.Search,
		Category: req.Category,
	}
	if req.Sort != nil {
		key, err := view.ParseSortKey(*req.Sort)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid sort key",
				"details": err.Error(),
			})
			return
		}
		filters.Sort = &key
	}
	if req.Mode != nil {
		mode, err := view.ParseMode(*req.Mode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid view mode",
				"details": err.Error(),
			})
			return
		}
		filters.Mode = &mode
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "View updated successfully",
		"data":    session.UpdateView(filters),
	})
}

// LoadMore handles POST /view/load-more
func (h *ViewHandler) LoadMore(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "More products revealed",
		"data":    session.LoadMore(),
	})
}

// Navigate handles PUT /view/screen
func (h *ViewHandler) Navigate(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req storefront.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	screen, err := view.ParseScreen(req.Screen)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid screen",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Screen changed successfully",
		"data":    session.Navigate(screen),
	})
}
