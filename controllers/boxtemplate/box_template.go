package boxTemplateControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marodi-mykhailo/pan-zelek/models"
	"gorm.io/gorm"
)

type BoxTemplateItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Weight    int    `json:"weight" binding:"required,gt=0"`
}

type CreateBoxTemplateRequest struct {
	Name  string                 `json:"name" binding:"required"`
	Items []BoxTemplateItemInput `json:"items" binding:"required,min=1,dive"`
}

// GET /api/box-templates
func GetBoxTemplates(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var templates []models.BoxTemplate
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&templates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch box templates"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"templates": templates})
	}
}

// POST /api/box-templates
func CreateBoxTemplate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req CreateBoxTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and items are required"})
			return
		}

		totalWeight := 0
		items := make([]models.BoxTemplateItem, 0, len(req.Items))
		for _, in := range req.Items {
			totalWeight += in.Weight
			items = append(items, models.BoxTemplateItem{
				ProductID: in.ProductID,
				Weight:    in.Weight,
			})
		}

		template := models.BoxTemplate{
			UserID:      userID,
			Name:        req.Name,
			TotalWeight: totalWeight,
			Items:       items,
		}
		if err := db.Create(&template).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save box template"})
			return
		}

		if err := db.Preload("Items.Product").First(&template, "id = ?", template.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch box template"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "template": template})
	}
}

// DELETE /api/box-templates/:id
func DeleteBoxTemplate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var template models.BoxTemplate
		if err := db.First(&template, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch box template"})
			return
		}

		// Ownership check hides other users' templates entirely.
		if template.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("box_template_id = ?", template.ID).
				Delete(&models.BoxTemplateItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&template).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete box template"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
