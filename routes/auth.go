package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/marodi-mykhailo/pan-zelek/controllers/auth"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.GET("/me", middleware.RequireAuth, authControllers.Me(db))
	}
}
