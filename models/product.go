package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LowStockThreshold marks a product as low stock. Derived on read, never
// stored as a flag.
const LowStockThreshold = 10

type Product struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;index"`
	Description string    `json:"description"`
	Price       Cents     `json:"price" gorm:"not null;check:price >= 0"`
	Cost        Cents     `json:"cost" gorm:"not null;check:cost >= 0"`
	Stock       int       `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	Barcode     string    `json:"barcode" gorm:"index"`
	Category    string    `json:"category" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Cost        string `json:"cost" binding:"required"`
	Stock       *int   `json:"stock" binding:"required,min=0"`
	Barcode     string `json:"barcode"`
	Category    string `json:"category"`
}

type ProductStatsResponse struct {
	TotalProducts int `json:"total_products"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
}
