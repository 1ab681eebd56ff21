package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Influencer is a virtual brand persona used by the content-generation
// wizard. AvatarURL is an opaque string; no media bytes are processed here.
type Influencer struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name                string    `json:"name" gorm:"not null"`
	AvatarURL           string    `json:"avatar_url"`
	AgeRange            string    `json:"age_range"`
	Gender              string    `json:"gender"`
	Ethnicity           string    `json:"ethnicity"`
	BodyType            string    `json:"body_type"`
	HairStyle           string    `json:"hair_style"`
	DistinctiveFeatures string    `json:"distinctive_features"`
	Language            string    `json:"language"`
	Dialect             string    `json:"dialect"`
	Tone                string    `json:"tone"`
	SpeakingStyle       string    `json:"speaking_style"`
	EnergyLevel         string    `json:"energy_level"`
	BrandAlignment      string    `json:"brand_alignment"`
	CreatedAt           time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (i *Influencer) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Influencer) TableName() string {
	return "influencers"
}

type InfluencerRequest struct {
	Name                string `json:"name" binding:"required"`
	AvatarURL           string `json:"avatar_url"`
	AgeRange            string `json:"age_range"`
	Gender              string `json:"gender"`
	Ethnicity           string `json:"ethnicity"`
	BodyType            string `json:"body_type"`
	HairStyle           string `json:"hair_style"`
	DistinctiveFeatures string `json:"distinctive_features"`
	Language            string `json:"language"`
	Dialect             string `json:"dialect"`
	Tone                string `json:"tone"`
	SpeakingStyle       string `json:"speaking_style"`
	EnergyLevel         string `json:"energy_level"`
	BrandAlignment      string `json:"brand_alignment"`
}

type ContentType string

const (
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
)

type VideoType string

const (
	VideoPromotional VideoType = "promotional"
	VideoStory       VideoType = "story"
)

// GeneratedContent is the stored metadata for one generated asset. The URL is
// opaque; the generation itself happens downstream of the webhook.
type GeneratedContent struct {
	ID           uuid.UUID                     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID                     `json:"user_id" gorm:"type:uuid;not null;index"`
	RequestID    uuid.UUID                     `json:"request_id" gorm:"type:uuid;not null;index"`
	Type         ContentType                   `json:"type" gorm:"not null;check:type IN ('image', 'video')"`
	VideoType    *VideoType                    `json:"video_type,omitempty" gorm:"check:video_type IN ('promotional', 'story')"`
	URL          string                        `json:"url" gorm:"not null"`
	Platforms    datatypes.JSONSlice[string]   `json:"platforms"`
	InfluencerID *uuid.UUID                    `json:"influencer_id,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time                     `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (g *GeneratedContent) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (GeneratedContent) TableName() string {
	return "generated_content"
}

// ─── Generation request / webhook payload ────────────────────────────────────

type GenerationProduct struct {
	Code           string `json:"code" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Keywords       string `json:"keywords"`
	TargetAudience string `json:"targetAudience"`
	PreviewURL     string `json:"previewUrl"`
}

type ImageGenerationSpec struct {
	Count             int      `json:"count" binding:"min=0,max=10"`
	Style             string   `json:"style"`
	VisualDescription string   `json:"visualDescription"`
	InfluencerID      string   `json:"influencerId"`
	Platforms         []string `json:"platforms"`
	AudioURL          string   `json:"audioUrl"`
	URLs              []string `json:"urls"`
}

type VideoGenerationSpec struct {
	Count         int      `json:"count" binding:"min=0,max=5"`
	Style         string   `json:"style"`
	Duration      string   `json:"duration"`
	Description   string   `json:"description"`
	InfluencerID  string   `json:"influencerId"`
	CallToAction  string   `json:"callToAction,omitempty"`
	NarrativeTone string   `json:"narrativeTone,omitempty"`
	Platforms     []string `json:"platforms"`
	AudioURL      string   `json:"audioUrl"`
	URLs          []string `json:"urls"`
}

type VideoGeneration struct {
	SelectedTypes []string             `json:"selectedTypes"`
	Promotional   *VideoGenerationSpec `json:"promotional"`
	Story         *VideoGenerationSpec `json:"story"`
}

type GenerationRequest struct {
	Product         GenerationProduct   `json:"product" binding:"required"`
	ImageGeneration ImageGenerationSpec `json:"imageGeneration"`
	VideoGeneration VideoGeneration     `json:"videoGeneration"`
}

type WebhookContentItem struct {
	ID           string    `json:"id"`
	VideoType    *VideoType `json:"videoType,omitempty"`
	URL          string    `json:"url"`
	Platforms    []string  `json:"platforms"`
	InfluencerID string    `json:"influencerId,omitempty"`
}

type WebhookGeneratedContent struct {
	Images []WebhookContentItem `json:"images"`
	Videos []WebhookContentItem `json:"videos"`
}

// WebhookPayload is the JSON body posted to the automation endpoint. The
// response body is never parsed; only the HTTP status is checked.
type WebhookPayload struct {
	Product          GenerationProduct       `json:"product"`
	ImageGeneration  ImageGenerationSpec     `json:"imageGeneration"`
	VideoGeneration  VideoGeneration         `json:"videoGeneration"`
	GeneratedContent WebhookGeneratedContent `json:"generatedContent"`
	Timestamp        time.Time               `json:"timestamp"`
}

type GenerationResponse struct {
	RequestID        uuid.UUID          `json:"request_id"`
	Content          []GeneratedContent `json:"content"`
	WebhookDelivered bool               `json:"webhook_delivered"`
}
