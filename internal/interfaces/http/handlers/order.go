// internal/interfaces/http/handlers/order.go
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopmart/internal/domain/order"
)

// TrackingNotFoundMessage is shown when no order matches a tracking id
const TrackingNotFoundMessage = "Order not found. Please check your tracking ID."

// ReceiptGenerator renders printable order receipts
type ReceiptGenerator interface {
	GenerateReceipt(o *order.Order) (*bytes.Buffer, error)
}

// OrderHandler handles order history and tracking endpoints
type OrderHandler struct {
	receipts ReceiptGenerator
	logger   *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(receipts ReceiptGenerator, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		receipts: receipts,
		logger:   logger,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	orders := session.Orders()
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	o, err := session.Order(c.Param("id"))
	if err != nil {
		h.orderNotFound(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// DownloadReceipt handles GET /orders/:id/receipt
func (h *OrderHandler) DownloadReceipt(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	o, err := session.Order(c.Param("id"))
	if err != nil {
		h.orderNotFound(c, err)
		return
	}

	pdfBuffer, err := h.receipts.GenerateReceipt(o)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", o.ID).Error("Failed to generate receipt")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", o.ID))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

// TrackOrder handles GET /tracking/:trackingId
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	info, found := session.Track(c.Param("trackingId"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": TrackingNotFoundMessage,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order found",
		"data":    info,
	})
}

// RecentOrders handles GET /tracking/recent
func (h *OrderHandler) RecentOrders(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recent orders retrieved successfully",
		"data":    session.RecentOrders(),
	})
}

func (h *OrderHandler) orderNotFound(c *gin.Context, err error) {
	if errors.Is(err, order.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to retrieve order",
	})
}
