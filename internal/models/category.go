package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named content bucket news items are filed under
type Category struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Selected    bool      `json:"selected" gorm:"not null;default:false;index"`
	HomeOrder   int       `json:"home_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate assigns a UUID when the caller did not
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// CategoryNews files a news item under a category
type CategoryNews struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CategoryID string    `json:"category_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_category_news_pair;index"`
	NewsID     string    `json:"news_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_category_news_pair;index"`
	CreatedAt  time.Time `json:"created_at"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	News     *News     `json:"news,omitempty" gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CategoryNews
func (CategoryNews) TableName() string {
	return "category_news"
}

// BeforeCreate assigns a UUID when the caller did not
func (cn *CategoryNews) BeforeCreate(tx *gorm.DB) error {
	if cn.ID == "" {
		cn.ID = uuid.New().String()
	}
	return nil
}

// AddCategoryRequest is the payload of the "Add Category" form
type AddCategoryRequest struct {
	Name        string `json:"name" validate:"min=2"`
	Slug        string `json:"slug" validate:"min=2,slug"`
	Description string `json:"description" validate:"min=10"`
}

// UpdateCategoryRequest is the payload of the category edit form
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"min=2"`
	Slug        string `json:"slug" validate:"min=2,slug"`
	Description string `json:"description" validate:"min=10"`
}

// HomepageSelectionRequest marks a category for the public homepage
type HomepageSelectionRequest struct {
	Selected bool `json:"selected"`
	Order    int  `json:"order" validate:"gte=0"`
}

// CategorySection is one display-ready homepage category block
type CategorySection struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Slug string     `json:"slug"`
	Link string     `json:"link"`
	News []NewsCard `json:"news"`
}

// CategoryLink returns the public route of a category page
func CategoryLink(slug string) string {
	return "/category/" + slug
}

// CategoryPage is a category with one page of its published news
type CategoryPage struct {
	Category *Category `json:"category"`
	News     []News    `json:"news"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
