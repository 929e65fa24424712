package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoxTemplate is a user's saved candy-box composition from the box builder:
// a named set of (product, weight) pairs with a total-weight summary.
type BoxTemplate struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	UserID      string            `gorm:"not null;index" json:"userId"`
	Name        string            `gorm:"not null" json:"name"`
	TotalWeight int               `gorm:"not null" json:"totalWeight"`
	Items       []BoxTemplateItem `gorm:"foreignKey:BoxTemplateID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (bt *BoxTemplate) BeforeCreate(tx *gorm.DB) error {
	if bt.ID == "" {
		bt.ID = uuid.NewString()
	}
	return nil
}

type BoxTemplateItem struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	BoxTemplateID string  `gorm:"index" json:"boxTemplateId"`
	ProductID     string  `gorm:"not null" json:"productId"`
	Product       Product `gorm:"foreignKey:ProductID" json:"product"`
	Weight        int     `gorm:"not null" json:"weight"`
}

func (bti *BoxTemplateItem) BeforeCreate(tx *gorm.DB) error {
	if bti.ID == "" {
		bti.ID = uuid.NewString()
	}
	return nil
}
