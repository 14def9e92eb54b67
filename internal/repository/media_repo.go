package repository

import (
	"context"
	"time"

	"github.com/news-portal-api/internal/models"
	"gorm.io/gorm"
)

// mediaRepo is the concrete implementation of MediaRepository
type mediaRepo struct {
	db *gorm.DB
}

// NewMediaRepo creates a new media repository
func NewMediaRepo(db *gorm.DB) MediaRepository {
	return &mediaRepo{db: db}
}

// Create inserts a media record; url and title are not unique
func (r *mediaRepo) Create(ctx context.Context, media *models.Media) error {
	err := r.db.WithContext(ctx).Create(media).Error
	return storeError("add media", err, nil, nil)
}

// GetByID retrieves a media record by ID
func (r *mediaRepo) GetByID(ctx context.Context, id string) (*models.Media, error) {
	var media models.Media
	err := r.db.WithContext(ctx).First(&media, "id = ?", id).Error
	if err != nil {
		return nil, storeError("fetch media", err, ErrMediaNotFound, nil)
	}
	return &media, nil
}

// Exists checks if a media record with the given ID exists
func (r *mediaRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Media{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, storeError("fetch media", err, nil, nil)
	}
	return count > 0, nil
}

// List returns the whole media library, newest first
func (r *mediaRepo) List(ctx context.Context) ([]models.Media, error) {
	media := make([]models.Media, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&media).Error
	if err != nil {
		return nil, storeError("fetch media", err, nil, nil)
	}
	return media, nil
}

// ListByType returns media of one type, newest first
func (r *mediaRepo) ListByType(ctx context.Context, mediaType models.MediaType) ([]models.Media, error) {
	media := make([]models.Media, 0)
	err := r.db.WithContext(ctx).
		Where("type = ?", mediaType).
		Order("created_at DESC").
		Find(&media).Error
	if err != nil {
		return nil, storeError("fetch media by type", err, nil, nil)
	}
	return media, nil
}

// Delete removes a media record. News referencing it lose their media reference
// in the same transaction so no reader ever sees a dangling id.
func (r *mediaRepo) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.News{}).Where("media_id = ?", id).Update("media_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Media{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMediaNotFound
		}
		return nil
	})
	return storeError("delete media", err, nil, nil)
}

// CountByTypeBetween counts media created in [from, to) per type
func (r *mediaRepo) CountByTypeBetween(ctx context.Context, from, to time.Time) (map[models.MediaType]int64, error) {
	var rows []struct {
		Type  models.MediaType
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Media{}).
		Select("type, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError("count media", err, nil, nil)
	}

	counts := make(map[models.MediaType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}
