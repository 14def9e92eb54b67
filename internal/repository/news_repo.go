package repository

import (
	"context"
	"time"

	"github.com/news-portal-api/internal/models"
	"gorm.io/gorm"
)

// newsRepo is the concrete implementation of NewsRepository
type newsRepo struct {
	db *gorm.DB
}

// NewNewsRepo creates a new news repository
func NewNewsRepo(db *gorm.DB) NewsRepository {
	return &newsRepo{db: db}
}

// Create inserts a news item together with its category associations
func (r *newsRepo) Create(ctx context.Context, news *models.News, categoryIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Media").Create(news).Error; err != nil {
			return storeError("create news", err, nil, ErrNewsSlugTaken)
		}
		return insertLinks(tx, news.ID, categoryIDs)
	})
	return storeError("create news", err, nil, nil)
}

// GetByID retrieves a news item by ID with its media resolved
func (r *newsRepo) GetByID(ctx context.Context, id string) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).Preload("Media").First(&news, "id = ?", id).Error
	if err != nil {
		return nil, storeError("get news", err, ErrNewsNotFound, nil)
	}
	return &news, nil
}

// GetBySlug retrieves a news item by slug with its media resolved
func (r *newsRepo) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).Preload("Media").First(&news, "slug = ?", slug).Error
	if err != nil {
		return nil, storeError("get news", err, ErrNewsNotFound, nil)
	}
	return &news, nil
}

// SlugExists checks if a news item with the given slug exists
func (r *newsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.News{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, storeError("check news slug", err, nil, nil)
	}
	return count > 0, nil
}

// List returns news for the dashboard, newest first
func (r *newsRepo) List(ctx context.Context, filter models.NewsFilter) ([]models.News, error) {
	news := make([]models.News, 0)
	query := r.db.WithContext(ctx).Preload("Media").Order("created_at DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&news).Error; err != nil {
		return nil, storeError("list news", err, nil, nil)
	}
	return news, nil
}

// UpdateStatus moves a news item to status
func (r *newsRepo) UpdateStatus(ctx context.Context, id string, status models.NewsStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.News{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return storeError("update news status", result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// SetCategories replaces the category set of a news item
func (r *newsRepo) SetCategories(ctx context.Context, id string, categoryIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.News{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNewsNotFound
		}

		if err := tx.Where("news_id = ?", id).Delete(&models.CategoryNews{}).Error; err != nil {
			return err
		}
		return insertLinks(tx, id, categoryIDs)
	})
	return storeError("set news categories", err, nil, nil)
}

// Delete removes a news item and its category associations
func (r *newsRepo) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&models.CategoryNews{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.News{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNewsNotFound
		}
		return nil
	})
	return storeError("delete news", err, nil, nil)
}

// ListPublishedByCategory pages through the published news of a category
func (r *newsRepo) ListPublishedByCategory(ctx context.Context, categoryID string, limit, offset int) ([]models.News, error) {
	news := make([]models.News, 0)
	query := publishedInCategory(r.db.WithContext(ctx), categoryID).Preload("Media")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&news).Error; err != nil {
		return nil, storeError("list category news", err, nil, nil)
	}
	return news, nil
}

// CountByStatusBetween counts news created in [from, to) per status
func (r *newsRepo) CountByStatusBetween(ctx context.Context, from, to time.Time) (map[models.NewsStatus]int64, error) {
	var rows []struct {
		Status models.NewsStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.News{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError("count news", err, nil, nil)
	}

	counts := make(map[models.NewsStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// insertLinks files newsID under every distinct category id
func insertLinks(tx *gorm.DB, newsID string, categoryIDs []string) error {
	seen := make(map[string]bool, len(categoryIDs))
	links := make([]models.CategoryNews, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		if seen[categoryID] {
			continue
		}
		seen[categoryID] = true
		links = append(links, models.CategoryNews{CategoryID: categoryID, NewsID: newsID})
	}
	if len(links) == 0 {
		return nil
	}
	if err := tx.Omit("Category", "News").Create(&links).Error; err != nil {
		return storeError("file news under categories", err, nil, nil)
	}
	return nil
}
