package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marodi-mykhailo/pan-zelek/email"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"github.com/marodi-mykhailo/pan-zelek/models"
	"github.com/marodi-mykhailo/pan-zelek/payment"
	"github.com/marodi-mykhailo/pan-zelek/pricing"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Weight    int    `json:"weight" binding:"required,gt=0"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Email         string           `json:"email" binding:"required,email"`
	Phone         string           `json:"phone" binding:"required"`
	Name          string           `json:"name"`
	Street        string           `json:"street" binding:"required"`
	City          string           `json:"city" binding:"required"`
	PostalCode    string           `json:"postalCode" binding:"required"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"`
	SessionID     string           `json:"sessionId"`
}

// -------- Core Logic --------

// PlaceOrder assembles an order end to end: authoritative catalog pricing,
// address resolution, persistence with snapshot line items, best-effort cart
// clearing, and the two external side effects. A missing product aborts the
// whole operation before anything is written; email and payment failures
// never invalidate the created order.
func PlaceOrder(db *gorm.DB, gateway payment.Gateway, sender email.Sender, identity models.Identity, req CreateOrderRequest) (*models.Order, payment.Result, error) {
	var result payment.Result

	// Price every line against the catalog. Any unknown product fails the
	// whole order; no partial writes.
	lines := make([]pricing.LineItem, 0, len(req.Items))
	prices := make(map[string]float64, len(req.Items))
	for _, in := range req.Items {
		var product models.Product
		if err := db.First(&product, "id = ?", in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, result, &pricing.ProductNotFoundError{ProductID: in.ProductID}
			}
			return nil, result, err
		}
		lines = append(lines, pricing.LineItem{ProductID: in.ProductID, Weight: in.Weight, Quantity: in.Quantity})
		prices[in.ProductID] = product.PricePer100g
	}

	quote, err := pricing.Compute(lines, prices)
	if err != nil {
		return nil, result, err
	}

	address, err := resolveAddress(db, identity, req)
	if err != nil {
		return nil, result, err
	}

	order := models.Order{
		Email:             req.Email,
		Phone:             req.Phone,
		Status:            models.OrderStatusPending,
		Total:             quote.Total.InexactFloat64(),
		ShippingCost:      quote.ShippingCost.InexactFloat64(),
		PaymentMethod:     req.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		ShippingAddressID: address.ID,
	}
	if identity.IsUser() {
		userID := identity.UserID()
		order.UserID = &userID
	}
	for _, line := range quote.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Weight:    line.Weight,
			Quantity:  line.Quantity,
			Price:     line.Price.InexactFloat64(),
		})
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, result, err
	}

	// Best-effort cart clearing: the order stands even if this fails.
	if !identity.IsAnonymous() {
		if err := identity.CartScope(db).Delete(&models.CartItem{}).Error; err != nil {
			log.Printf("⚠️ Failed to clear cart after order %s: %v", order.ID, err)
		}
	}

	if err := sender.SendOrderConfirmation(req.Email, order.ID, order.Total); err != nil {
		log.Printf("⚠️ Failed to send confirmation email for order %s: %v", order.ID, err)
	}

	result = gateway.Process(payment.Request{
		Amount:        order.Total,
		Currency:      "PLN",
		OrderID:       order.ID,
		CustomerEmail: req.Email,
		CustomerName:  req.Name,
		Description:   fmt.Sprintf("Zamówienie #%s", order.ID),
	})
	if result.Success {
		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
			log.Printf("⚠️ Failed to mark order %s as paid: %v", order.ID, err)
		} else {
			order.PaymentStatus = models.PaymentStatusPaid
		}
	}

	if err := db.Preload("Items.Product").Preload("ShippingAddress").First(&order, "id = ?", order.ID).Error; err != nil {
		log.Printf("⚠️ Failed to reload order %s: %v", order.ID, err)
	}

	return &order, result, nil
}

// resolveAddress reuses an exact street/city/postal-code match for a
// signed-in customer; otherwise it creates a new address. Guest checkouts
// always get a fresh, unowned default address.
func resolveAddress(db *gorm.DB, identity models.Identity, req CreateOrderRequest) (*models.Address, error) {
	if identity.IsUser() {
		var existing models.Address
		err := db.Where("user_id = ? AND street = ? AND city = ? AND postal_code = ?",
			identity.UserID(), req.Street, req.City, req.PostalCode).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	address := models.Address{
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    "Poland",
		IsDefault:  !identity.IsUser(),
	}
	if identity.IsUser() {
		userID := identity.UserID()
		address.UserID = &userID
	}
	if err := db.Create(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// -------- Handlers --------

// POST /api/orders
func CreateOrderHandler(db *gorm.DB, gateway payment.Gateway, sender email.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		identity := middleware.CallerIdentity(c)
		if !identity.IsUser() && req.SessionID != "" {
			identity = models.SessionIdentity(req.SessionID)
		}

		order, result, err := PlaceOrder(db, gateway, sender, identity, req)
		if err != nil {
			var notFound *pricing.ProductNotFoundError
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product %s not found", notFound.ProductID)})
				return
			}
			log.Printf("❌ Failed to create order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		BroadcastOrderEvent("order_created", *order)

		c.JSON(http.StatusOK, gin.H{
			"orderId": order.ID,
			"success": true,
			"order":   order,
			"payment": result,
		})
	}
}

// GET /api/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items.Product").
			Preload("ShippingAddress").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /api/orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("Items.Product").
			Preload("ShippingAddress").
			Preload("User").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// Signed-in callers only see their own orders.
		if v, exists := c.Get("user_id"); exists {
			userID, _ := v.(string)
			if order.UserID == nil || *order.UserID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
