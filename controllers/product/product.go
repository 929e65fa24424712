package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marodi-mykhailo/pan-zelek/models"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	NamePl        string   `json:"namePl" binding:"required"`
	Description   string   `json:"description"`
	DescriptionPl string   `json:"descriptionPl"`
	Category      string   `json:"category" binding:"required"`
	PricePer100g  float64  `json:"pricePer100g" binding:"required,gt=0"`
	InStock       *bool    `json:"inStock"`
	StockWeight   *float64 `json:"stockWeight"`
	Image         string   `json:"image"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	NamePl        *string  `json:"namePl"`
	Description   *string  `json:"description"`
	DescriptionPl *string  `json:"descriptionPl"`
	Category      *string  `json:"category"`
	PricePer100g  *float64 `json:"pricePer100g"`
	InStock       *bool    `json:"inStock"`
	StockWeight   *float64 `json:"stockWeight"`
	Image         *string  `json:"image"`
}

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if inStock := c.Query("inStock"); inStock != "" {
			query = query.Where("in_stock = ?", inStock == "true")
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"name ILIKE ? OR name_pl ILIKE ? OR description ILIKE ? OR description_pl ILIKE ?",
				like, like, like, like,
			)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		product := models.Product{
			Name:          req.Name,
			NamePl:        req.NamePl,
			Description:   req.Description,
			DescriptionPl: req.DescriptionPl,
			Category:      req.Category,
			PricePer100g:  req.PricePer100g,
			InStock:       inStock,
			StockWeight:   req.StockWeight,
			Image:         req.Image,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
	}
}

// PUT /api/products/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.NamePl != nil {
			updates["name_pl"] = *req.NamePl
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.DescriptionPl != nil {
			updates["description_pl"] = *req.DescriptionPl
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.PricePer100g != nil {
			updates["price_per100g"] = *req.PricePer100g
		}
		if req.InStock != nil {
			updates["in_stock"] = *req.InStock
		}
		if req.StockWeight != nil {
			updates["stock_weight"] = *req.StockWeight
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}

// DELETE /api/products/:id (admin)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Product{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
