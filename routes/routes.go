package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/marodi-mykhailo/pan-zelek/email"
	"github.com/marodi-mykhailo/pan-zelek/payment"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gateway payment.Gateway, sender email.Sender) {
	SetupAuthRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, gateway, sender)
	SetupBoxTemplateRoutes(r, db)
	SetupAdminRoutes(r, db, sender)
}
