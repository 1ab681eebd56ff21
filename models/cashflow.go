package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryKind is the cash-flow direction. Exactly two variants exist.
type EntryKind string

const (
	KindIncome  EntryKind = "income"
	KindExpense EntryKind = "expense"
)

// CashFlowEntry is one income or expense record pinned to a calendar day.
// Owned by a single user; created, edited and deleted from the timeline.
type CashFlowEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_cash_flow_user_date"`
	Date      Day       `json:"date" gorm:"not null;index:idx_cash_flow_user_date"`
	Kind      EntryKind `json:"type" gorm:"column:type;not null;check:type IN ('income', 'expense')"`
	Amount    Cents     `json:"amount" gorm:"not null;check:amount >= 0"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *CashFlowEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CashFlowEntry) TableName() string {
	return "cash_flow"
}

type CreateCashFlowRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Kind   string `json:"type" binding:"required,oneof=income expense"`
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note"`
}

type UpdateCashFlowRequest struct {
	Kind   string `json:"type" binding:"required,oneof=income expense"`
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note"`
}
