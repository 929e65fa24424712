package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order lifecycle: PENDING → CONFIRMED → PROCESSING → SHIPPED →
	// DELIVERED, with CANCELLED reachable from any non-terminal state.
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"

	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a request value onto the closed status set. Anything
// outside the six recognized values is rejected.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(status)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// Terminal reports whether no further transitions leave this status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order keeps its own contact fields so guest orders stay servable without a
// user account. Total always equals the sum of item prices plus ShippingCost.
type Order struct {
	ID                string        `gorm:"primaryKey" json:"id"`
	UserID            *string       `gorm:"index" json:"userId,omitempty"`
	User              *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Email             string        `gorm:"not null" json:"email"`
	Phone             string        `gorm:"not null" json:"phone"`
	Status            OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	Total             float64       `json:"total"`
	ShippingCost      float64       `json:"shippingCost"`
	PaymentMethod     string        `json:"paymentMethod"`
	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"paymentStatus"`
	ShippingAddressID string        `json:"shippingAddressId"`
	ShippingAddress   Address       `gorm:"foreignKey:ShippingAddressID" json:"shippingAddress"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt         time.Time     `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem snapshots product, weight, quantity and the price computed at
// order time; catalog price changes never alter historical orders.
type OrderItem struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"index" json:"orderId"`
	ProductID string  `gorm:"not null" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Weight    int     `gorm:"not null" json:"weight"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
