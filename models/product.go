package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry. Prices are PLN per 100 g; order items snapshot
// the computed price at checkout, so later edits never touch placed orders.
type Product struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	NamePl        string    `gorm:"not null" json:"namePl"`
	Description   string    `json:"description"`
	DescriptionPl string    `json:"descriptionPl"`
	Category      string    `gorm:"index" json:"category"`
	PricePer100g  float64   `gorm:"not null" json:"pricePer100g"`
	InStock       bool      `gorm:"default:true" json:"inStock"`
	StockWeight   *float64  `json:"stockWeight"`
	Image         string    `json:"image"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
