package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marodi-mykhailo/pan-zelek/middleware"
	"github.com/marodi-mykhailo/pan-zelek/models"
	"github.com/marodi-mykhailo/pan-zelek/pricing"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Weight    int    `json:"weight" binding:"required,gt=0"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
	Weight   *int `json:"weight" binding:"omitempty,gt=0"`
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.CallerIdentity(c)
		if identity.IsAnonymous() {
			c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
			return
		}

		var items []models.CartItem
		if err := identity.CartScope(db).Preload("Product").Order("created_at ASC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		lines := make([]pricing.LineItem, 0, len(items))
		prices := make(map[string]float64, len(items))
		for _, item := range items {
			lines = append(lines, pricing.LineItem{
				ProductID: item.ProductID,
				Weight:    item.Weight,
				Quantity:  item.Quantity,
			})
			prices[item.ProductID] = item.Product.PricePer100g
		}

		quote, err := pricing.Compute(lines, prices)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "total": quote.Subtotal.InexactFloat64()})
	}
}

// POST /api/cart/add
//
// Merge law: an existing row with the same owner, product and weight gets its
// quantity incremented; distinct weights stay distinct lines.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.CallerIdentity(c)
		if identity.IsAnonymous() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID or User ID required"})
			return
		}

		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var existing models.CartItem
		err := identity.CartScope(db).
			Where("product_id = ? AND weight = ?", req.ProductID, req.Weight).
			First(&existing).Error
		if err == nil {
			existing.Quantity += req.Quantity
			if err := db.Save(&existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			existing.Product = product
			c.JSON(http.StatusOK, gin.H{"success": true, "item": existing})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item := models.CartItem{
			ProductID: req.ProductID,
			Weight:    req.Weight,
			Quantity:  req.Quantity,
		}
		identity.Claim(&item)
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		item.Product = product

		c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
	}
}

// PUT /api/cart/:itemId
//
// Setting quantity to zero or below removes the line. Changing weight never
// merges with another line.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.CartItem
		if err := db.First(&item, "id = ?", c.Param("itemId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Quantity != nil && *req.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "removed": true})
			return
		}

		updates := make(map[string]interface{})
		if req.Quantity != nil {
			updates["quantity"] = *req.Quantity
		}
		if req.Weight != nil {
			updates["weight"] = *req.Weight
		}

		if len(updates) > 0 {
			if err := db.Model(&item).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		if err := db.Preload("Product").First(&item, "id = ?", item.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
	}
}

// DELETE /api/cart/:itemId
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.CartItem{}, "id = ?", c.Param("itemId"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
