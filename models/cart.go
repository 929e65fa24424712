package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one line of a shopper's cart. It is owned by either an
// authenticated user or an anonymous session, never both; rows with the same
// owner, product and weight are merged by incrementing Quantity.
type CartItem struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    *string   `gorm:"index" json:"userId,omitempty"`
	SessionID *string   `gorm:"index" json:"sessionId,omitempty"`
	ProductID string    `gorm:"not null;index" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Weight    int       `gorm:"not null" json:"weight"` // grams
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
