package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/marodi-mykhailo/pan-zelek/controllers/admin"
	"github.com/marodi-mykhailo/pan-zelek/email"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the back-office endpoints. All of them require
// an authenticated ADMIN user.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, sender email.Sender) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.RequireAuth, middleware.RequireAdmin)
	{
		adminGroup.GET("/stats", adminControllers.GetStats(db))

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminControllers.GetAllOrders(db))
			orderAdmin.GET("/export", adminControllers.ExportOrdersToExcel(db))
			orderAdmin.PUT("/:id/status", adminControllers.UpdateOrderStatus(db, sender))
		}
	}

	// User listing lives under /api/users but is admin-only.
	r.GET("/api/users", middleware.RequireAuth, middleware.RequireAdmin, adminControllers.GetAllUsers(db))
}
