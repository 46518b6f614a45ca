// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopmart/internal/interfaces/http/handlers"
)

// Dependencies are the collaborators the route handlers need
type Dependencies struct {
	Receipts handlers.ReceiptGenerator
	Logger   *logrus.Logger
}

// SetupProductRoutes sets up catalog and view routes
func SetupProductRoutes(rg *gin.RouterGroup) {
	productHandler := handlers.NewProductHandler()
	viewHandler := handlers.NewViewHandler()

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.DELETE("/selection", productHandler.ClearSelection)
	}
	rg.GET("/categories", productHandler.ListCategories)

	view := rg.Group("/view")
	{
		view.GET("", viewHandler.GetView)
		view.PATCH("", viewHandler.UpdateView)
		view.POST("/load-more", viewHandler.LoadMore)
		view.PUT("/screen", viewHandler.Navigate)
	}
}

// SetupCartRoutes sets up cart, wishlist and customer routes
func SetupCartRoutes(rg *gin.RouterGroup) {
	cartHandler := handlers.NewCartHandler()
	wishlistHandler := handlers.NewWishlistHandler()
	customerHandler := handlers.NewCustomerHandler()

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PATCH("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}

	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/items/:id/toggle", wishlistHandler.ToggleWishlist)
	}

	rg.GET("/customer", customerHandler.GetCustomer)
}

// SetupCheckoutRoutes sets up the checkout wizard routes
func SetupCheckoutRoutes(rg *gin.RouterGroup) {
	checkoutHandler := handlers.NewCheckoutHandler()

	checkout := rg.Group("/checkout")
	{
		checkout.POST("", checkoutHandler.BeginCheckout)
		checkout.GET("", checkoutHandler.GetCheckout)
		checkout.DELETE("", checkoutHandler.CancelCheckout)
		checkout.PUT("/shipping", checkoutHandler.UpdateShipping)
		checkout.PUT("/payment", checkoutHandler.UpdatePayment)
		checkout.POST("/next", checkoutHandler.NextStep)
		checkout.POST("/back", checkoutHandler.PreviousStep)
		checkout.POST("/confirm", checkoutHandler.ConfirmCheckout)
		checkout.GET("/confirmation", checkoutHandler.GetConfirmation)
	}
}

// SetupOrderRoutes sets up order history and tracking routes
func SetupOrderRoutes(rg *gin.RouterGroup, deps Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Receipts, deps.Logger)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.DownloadReceipt)
	}

	tracking := rg.Group("/tracking")
	{
		tracking.GET("/recent", orderHandler.RecentOrders)
		tracking.GET("/:trackingId", orderHandler.TrackOrder)
	}
}

// SetupRoutes registers every API route on rg. Session middleware must
// already be installed on rg.
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupProductRoutes(rg)
	SetupCartRoutes(rg)
	SetupCheckoutRoutes(rg)
	SetupOrderRoutes(rg, deps)
}
