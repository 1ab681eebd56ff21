package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
	OrderCompleted  OrderStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order represents a complete customer order. Orders are created by the
// storefront; the back office only reads them and overwrites status.
type Order struct {
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber     string        `json:"order_number" gorm:"not null;uniqueIndex"`
	CustomerName    string        `json:"customer_name" gorm:"not null"`
	CustomerEmail   string        `json:"customer_email" gorm:"not null"`
	Items           []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	Total           Cents         `json:"total" gorm:"column:total_amount;not null;check:total_amount >= 0"`
	Status          OrderStatus   `json:"status" gorm:"not null;index;check:status IN ('pending', 'processing', 'shipped', 'delivered', 'cancelled', 'returned', 'completed')"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"not null;check:payment_status IN ('paid', 'pending', 'refunded')"`
	OrderDate       time.Time     `json:"order_date" gorm:"not null;index"`
	ShippingAddress string        `json:"shipping_address"`
	CreatedAt       time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// ItemsTotal sums unit price times quantity across line items. Order.Total is
// authoritative; this exists for the consistency warning on reads.
func (o *Order) ItemsTotal() Cents {
	var sum Cents
	for _, item := range o.Items {
		sum += item.UnitPrice * Cents(item.Quantity)
	}
	return sum
}

// OrderItem is one product line in an order.
type OrderItem struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid;index"`
	Name      string     `json:"name" gorm:"not null"`
	Quantity  int        `json:"quantity" gorm:"not null;check:quantity >= 1"`
	UnitPrice Cents      `json:"unit_price" gorm:"not null;check:unit_price >= 0"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled returned completed"`
}

type OrderStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type OrderStatsResponse struct {
	TotalOrders int                 `json:"total_orders"`
	Pending     OrderStatsBreakdown `json:"pending"`
	Processing  OrderStatsBreakdown `json:"processing"`
	Shipped     OrderStatsBreakdown `json:"shipped"`
	Delivered   OrderStatsBreakdown `json:"delivered"`
	Cancelled   OrderStatsBreakdown `json:"cancelled"`
	Returned    OrderStatsBreakdown `json:"returned"`
	Completed   OrderStatsBreakdown `json:"completed"`
}
