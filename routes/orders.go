package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/marodi-mykhailo/pan-zelek/controllers/order"
	"github.com/marodi-mykhailo/pan-zelek/email"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"github.com/marodi-mykhailo/pan-zelek/payment"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the "/api/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, gateway payment.Gateway, sender email.Sender) {
	orders := r.Group("/api/orders")
	{
		// Checkout: works for guests and signed-in users alike
		orders.POST("", middleware.OptionalAuth, orderControllers.CreateOrderHandler(db, gateway, sender))

		// Own order history
		orders.GET("", middleware.RequireAuth, orderControllers.GetUserOrdersHandler(db))

		// Websocket feed of order events for the admin dashboard
		orders.GET("/feed", orderControllers.OrderFeedHandler)

		orders.GET("/:id", middleware.OptionalAuth, orderControllers.GetOrderByIDHandler(db))
	}
}
