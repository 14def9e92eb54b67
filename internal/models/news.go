package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsStatus represents the editorial state of a news item
type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "DRAFT"
	NewsStatusPending   NewsStatus = "PENDING"
	NewsStatusPublished NewsStatus = "PUBLISHED"
	NewsStatusArchived  NewsStatus = "ARCHIVED"
)

// ValidNewsStatuses defines allowed news statuses
var ValidNewsStatuses = map[NewsStatus]bool{
	NewsStatusDraft:     true,
	NewsStatusPending:   true,
	NewsStatusPublished: true,
	NewsStatusArchived:  true,
}

// News is an article with a permalink slug
type News struct {
	ID        string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title     string     `json:"title" gorm:"type:varchar(500);not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	Slug      string     `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Status    NewsStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	MediaID   *string    `json:"media_id,omitempty" gorm:"type:varchar(36);index"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt time.Time  `json:"updated_at"`

	Media *Media `json:"media,omitempty" gorm:"foreignKey:MediaID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for News
func (News) TableName() string {
	return "news"
}

// BeforeCreate assigns a UUID when the caller did not
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

// Headline is the ticker projection of a news item
type Headline struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Slug   string     `json:"slug"`
	Status NewsStatus `json:"status"`
}

// TickerFeed is the latest-news ticker; Fallback tells the caller to render its placeholder
type TickerFeed struct {
	Items    []Headline `json:"items"`
	Fallback bool       `json:"fallback"`
}

// NewsCard is a news item as shown inside a homepage category block
type NewsCard struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
	Media   *Media `json:"media"`
}

// CreateNewsRequest is the payload of the news editor
type CreateNewsRequest struct {
	Title       string     `json:"title" validate:"min=2"`
	Content     string     `json:"content" validate:"required"`
	Slug        string     `json:"slug" validate:"min=2,slug"`
	Status      NewsStatus `json:"status" validate:"omitempty,news_status"`
	MediaID     *string    `json:"media_id,omitempty"`
	CategoryIDs []string   `json:"category_ids"`
}

// UpdateNewsStatusRequest moves a news item through the editorial workflow
type UpdateNewsStatusRequest struct {
	Status NewsStatus `json:"status" validate:"required,news_status"`
}

// SetNewsCategoriesRequest replaces the categories a news item is filed under
type SetNewsCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids"`
}

// NewsFilter narrows dashboard news listings
type NewsFilter struct {
	Status NewsStatus
	Limit  int
	Offset int
}
