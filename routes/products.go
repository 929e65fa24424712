package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/marodi-mykhailo/pan-zelek/controllers/product"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers catalog browsing (public) and product
// management (admin) endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))

		products.POST("", middleware.RequireAuth, middleware.RequireAdmin, productControllers.CreateProduct(db))
		products.PUT("/:id", middleware.RequireAuth, middleware.RequireAdmin, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.RequireAuth, middleware.RequireAdmin, productControllers.DeleteProduct(db))
	}
}
