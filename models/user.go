package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           string        `gorm:"primaryKey" json:"id"`
	Email        string        `gorm:"unique;not null" json:"email"`
	Password     string        `gorm:"not null" json:"-"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Role         string        `gorm:"type:VARCHAR(10);default:'USER'" json:"role"`
	Orders       []Order       `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Addresses    []Address     `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	CartItems    []CartItem    `gorm:"foreignKey:UserID" json:"-"`
	BoxTemplates []BoxTemplate `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time     `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
