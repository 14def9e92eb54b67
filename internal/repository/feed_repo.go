package repository

import (
	"context"

	"github.com/news-portal-api/internal/models"
	apperrors "github.com/news-portal-api/pkg/errors"
	"gorm.io/gorm"
)

// feedRepo is the concrete implementation of FeedRepository
type feedRepo struct {
	db *gorm.DB
}

// NewFeedRepo creates a new feed repository
func NewFeedRepo(db *gorm.DB) FeedRepository {
	return &feedRepo{db: db}
}

// HomepageSections loads the selected categories with their latest published news.
// Everything is read inside one transaction with one query per category; any
// failure discards the whole result.
func (r *feedRepo) HomepageSections(ctx context.Context, newsPerCategory int) ([]models.CategorySection, error) {
	var sections []models.CategorySection

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var categories []models.Category
		err := tx.Where("selected = ?", true).
			Order("home_order ASC, created_at DESC").
			Find(&categories).Error
		if err != nil {
			return err
		}

		sections = make([]models.CategorySection, 0, len(categories))
		for _, category := range categories {
			var news []models.News
			err := publishedInCategory(tx, category.ID).
				Preload("Media").
				Limit(newsPerCategory).
				Find(&news).Error
			if err != nil {
				return err
			}

			cards := make([]models.NewsCard, 0, len(news))
			for _, n := range news {
				cards = append(cards, models.NewsCard{
					ID:      n.ID,
					Title:   n.Title,
					Content: n.Content,
					Slug:    n.Slug,
					Media:   n.Media,
				})
			}

			sections = append(sections, models.CategorySection{
				ID:   category.ID,
				Name: category.Name,
				Slug: category.Slug,
				Link: models.CategoryLink(category.Slug),
				News: cards,
			})
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewTransientStoreError("failed to load homepage categories", err)
	}

	return sections, nil
}

// LatestHeadlines returns the newest published news projected to id/title/slug/status
func (r *feedRepo) LatestHeadlines(ctx context.Context, limit int) ([]models.Headline, error) {
	headlines := make([]models.Headline, 0, limit)
	err := r.db.WithContext(ctx).
		Model(&models.News{}).
		Select("id", "title", "slug", "status").
		Where("status = ?", models.NewsStatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&headlines).Error
	if err != nil {
		return nil, storeError("load latest news", err, nil, nil)
	}
	return headlines, nil
}
