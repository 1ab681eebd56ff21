package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// Customer is a back-office customer record. TotalOrders, TotalSpent and
// LastOrderDate are denormalized by the storefront and never recomputed here.
type Customer struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Name          string         `json:"name" gorm:"not null;index"`
	Email         string         `json:"email" gorm:"not null;index"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	City          string         `json:"city" gorm:"index"`
	JoinDate      Day            `json:"join_date"`
	TotalOrders   int            `json:"total_orders" gorm:"not null;default:0"`
	TotalSpent    Cents          `json:"total_spent" gorm:"not null;default:0"`
	LastOrderDate *Day           `json:"last_order_date,omitempty"`
	Status        CustomerStatus `json:"status" gorm:"not null;default:'active';check:status IN ('active', 'inactive')"`
	LoyaltyPoints int            `json:"loyalty_points" gorm:"not null;default:0"`
	Notes         string         `json:"notes"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (cu *Customer) BeforeCreate(tx *gorm.DB) error {
	if cu.ID == uuid.Nil {
		cu.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}

type UpdateCustomerRequest struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	LoyaltyPoints *int    `json:"loyalty_points,omitempty" binding:"omitempty,min=0"`
	Notes         *string `json:"notes,omitempty"`
}

type CustomerStatsResponse struct {
	TotalCustomers int `json:"total_customers"`
	Active         int `json:"active"`
	Inactive       int `json:"inactive"`
}
