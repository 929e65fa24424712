package routes

import (
	"github.com/gin-gonic/gin"
	boxTemplateControllers "github.com/marodi-mykhailo/pan-zelek/controllers/boxtemplate"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"gorm.io/gorm"
)

// SetupBoxTemplateRoutes registers the saved-box endpoints (auth required).
func SetupBoxTemplateRoutes(r *gin.Engine, db *gorm.DB) {
	templates := r.Group("/api/box-templates")
	templates.Use(middleware.RequireAuth)
	{
		templates.GET("", boxTemplateControllers.GetBoxTemplates(db))
		templates.POST("", boxTemplateControllers.CreateBoxTemplate(db))
		templates.DELETE("/:id", boxTemplateControllers.DeleteBoxTemplate(db))
	}
}
