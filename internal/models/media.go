package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaType enumerates the kinds of assets in the media library
type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeAudio    MediaType = "AUDIO"
	MediaTypeDocument MediaType = "DOCUMENT"
)

// ValidMediaTypes defines allowed media types
var ValidMediaTypes = map[MediaType]bool{
	MediaTypeImage:    true,
	MediaTypeVideo:    true,
	MediaTypeAudio:    true,
	MediaTypeDocument: true,
}

// Media is the metadata of a stored binary asset
type Media struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	URL         string    `json:"url" gorm:"type:text;not null"`
	Type        MediaType `json:"type" gorm:"type:varchar(20);not null;index"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Size        int64     `json:"size" gorm:"not null;default:0"`
	MimeType    string    `json:"mime_type" gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for Media
func (Media) TableName() string {
	return "media"
}

// BeforeCreate assigns a UUID when the caller did not
func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// AddMediaRequest is the payload for registering an uploaded asset
type AddMediaRequest struct {
	Title       string    `json:"title" validate:"required"`
	URL         string    `json:"url" validate:"required"`
	Type        MediaType `json:"type" validate:"required,media_type"`
	Description *string   `json:"description,omitempty"`
	Size        int64     `json:"size" validate:"gte=0"`
	MimeType    string    `json:"mime_type" validate:"required"`
}
