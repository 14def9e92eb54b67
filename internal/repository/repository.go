package repository

import (
	"context"
	"time"

	"github.com/news-portal-api/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	List(ctx context.Context) ([]models.Category, error)
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
	CountNews(ctx context.Context, id string) (int64, error)
	SetHomepage(ctx context.Context, id string, selected bool, order int) error
	Delete(ctx context.Context, id string) error
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// MediaRepository defines the interface for media library operations
type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id string) (*models.Media, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]models.Media, error)
	ListByType(ctx context.Context, mediaType models.MediaType) ([]models.Media, error)
	Delete(ctx context.Context, id string) error
	CountByTypeBetween(ctx context.Context, from, to time.Time) (map[models.MediaType]int64, error)
}

// NewsRepository defines the interface for news and category association operations
type NewsRepository interface {
	Create(ctx context.Context, news *models.News, categoryIDs []string) error
	GetByID(ctx context.Context, id string) (*models.News, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter models.NewsFilter) ([]models.News, error)
	UpdateStatus(ctx context.Context, id string, status models.NewsStatus) error
	SetCategories(ctx context.Context, id string, categoryIDs []string) error
	Delete(ctx context.Context, id string) error
	ListPublishedByCategory(ctx context.Context, categoryID string, limit, offset int) ([]models.News, error)
	CountByStatusBetween(ctx context.Context, from, to time.Time) (map[models.NewsStatus]int64, error)
}

// FeedRepository defines the read-only queries behind the public homepage
type FeedRepository interface {
	HomepageSections(ctx context.Context, newsPerCategory int) ([]models.CategorySection, error)
	LatestHeadlines(ctx context.Context, limit int) ([]models.Headline, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Category CategoryRepository
	Media    MediaRepository
	News     NewsRepository
	Feed     FeedRepository
}

// New creates all repositories with the given database connection
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Category: NewCategoryRepo(db),
		Media:    NewMediaRepo(db),
		News:     NewNewsRepo(db),
		Feed:     NewFeedRepo(db),
	}
}

// publishedInCategory selects the published news filed under categoryID, newest first
func publishedInCategory(db *gorm.DB, categoryID string) *gorm.DB {
	return db.Model(&models.News{}).
		Select("news.*").
		Joins("JOIN category_news ON category_news.news_id = news.id").
		Where("category_news.category_id = ? AND news.status = ?", categoryID, models.NewsStatusPublished).
		Order("news.created_at DESC")
}
