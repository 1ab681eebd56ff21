package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampaignType string

const (
	CampaignEmail    CampaignType = "email"
	CampaignSMS      CampaignType = "sms"
	CampaignSocial   CampaignType = "social"
	CampaignDiscount CampaignType = "discount"
)

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignScheduled CampaignStatus = "scheduled"
)

// Campaign is a marketing campaign shown on the marketing page.
type Campaign struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Name           string         `json:"name" gorm:"not null"`
	Type           CampaignType   `json:"type" gorm:"not null;check:type IN ('email', 'sms', 'social', 'discount')"`
	Status         CampaignStatus `json:"status" gorm:"not null;index;check:status IN ('active', 'paused', 'completed', 'scheduled')"`
	StartDate      Day            `json:"start_date" gorm:"not null"`
	EndDate        Day            `json:"end_date" gorm:"not null"`
	Budget         Cents          `json:"budget" gorm:"not null;check:budget >= 0"`
	Spent          Cents          `json:"spent" gorm:"not null;default:0"`
	Reach          int            `json:"reach" gorm:"not null;default:0"`
	Conversions    int            `json:"conversions" gorm:"not null;default:0"`
	ConversionRate float64        `json:"conversion_rate" gorm:"not null;default:0"`
	Description    string         `json:"description"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (cp *Campaign) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Campaign) TableName() string {
	return "campaigns"
}

type CampaignRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=email sms social discount"`
	Status      string `json:"status" binding:"required,oneof=active paused completed scheduled"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Budget      string `json:"budget" binding:"required"`
	Description string `json:"description"`
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paused completed scheduled"`
}
