package adminControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/marodi-mykhailo/pan-zelek/controllers/order"
	"github.com/marodi-mykhailo/pan-zelek/email"
	"github.com/marodi-mykhailo/pan-zelek/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items.Product").
			Preload("ShippingAddress").
			Preload("User").
			Order("created_at DESC").
			Limit(100).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// PUT /api/admin/orders/:id/status
//
// Moves an order through the fixed status lifecycle. An unrecognized target
// is rejected and leaves the stored status untouched; the customer
// notification is best-effort and never fails the transition.
func UpdateOrderStatus(db *gorm.DB, sender email.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items.Product").
			Preload("ShippingAddress").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		order.Status = status

		if err := sender.SendOrderStatusUpdate(order.Email, order.ID, string(status)); err != nil {
			log.Printf("⚠️ Failed to send status update email for order %s: %v", order.ID, err)
		}

		orderControllers.BroadcastOrderEvent("status_changed", order)

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}
