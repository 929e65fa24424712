package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a shipping destination. Guest checkouts always create a fresh
// unowned address; for signed-in customers an exact street/city/postal-code
// match on one of their saved addresses is reused instead.
type Address struct {
	ID         string  `gorm:"primaryKey" json:"id"`
	UserID     *string `gorm:"index" json:"userId,omitempty"`
	Street     string  `gorm:"not null" json:"street"`
	City       string  `gorm:"not null" json:"city"`
	PostalCode string  `gorm:"not null" json:"postalCode"`
	Country    string  `gorm:"default:'Poland'" json:"country"`
	IsDefault  bool    `json:"isDefault"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
