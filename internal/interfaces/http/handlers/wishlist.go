// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopmart/internal/domain/catalog"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct{}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler() *WishlistHandler {
	return &WishlistHandler{}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	entries := session.Wishlist()
	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"items": entries,
			"count": len(entries),
		},
	})
}

// ToggleWishlist handles POST /wishlist/items/:id/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	inWishlist, err := session.ToggleWishlist(productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update wishlist",
		})
		return
	}

	message := "Item removed from wishlist"
	if inWishlist {
		message = "Item added to wishlist"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"product_id":  productID,
			"in_wishlist": inWishlist,
		},
	})
}
