package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/marodi-mykhailo/pan-zelek/controllers/cart"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the "/api/cart/*" endpoints. Carts work for both
// signed-in users and anonymous sessions (X-Session-ID header).
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	cart.Use(middleware.OptionalAuth)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/add", cartControllers.AddToCart(db))
		cart.PUT("/:itemId", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:itemId", cartControllers.RemoveCartItem(db))
	}
}
