package repository

import (
	"context"
	"time"

	"github.com/news-portal-api/internal/models"
	"gorm.io/gorm"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// Create inserts a new category; a taken slug yields ErrCategorySlugTaken
func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	return storeError("create category", err, nil, ErrCategorySlugTaken)
}

// Update overwrites name, slug and description
func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	result := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"slug":        category.Slug,
			"description": category.Description,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return storeError("update category", result.Error, nil, ErrCategorySlugTaken)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, storeError("get category", err, ErrCategoryNotFound, nil)
	}
	return &category, nil
}

// GetBySlug retrieves a category by slug
func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		return nil, storeError("get category", err, ErrCategoryNotFound, nil)
	}
	return &category, nil
}

// SlugExists checks if a category other than excludeID uses slug
func (r *categoryRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, storeError("check category slug", err, nil, nil)
	}
	return count > 0, nil
}

// List returns every category, newest first
func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error
	if err != nil {
		return nil, storeError("list categories", err, nil, nil)
	}
	return categories, nil
}

// ExistingIDs returns the subset of ids that exist
func (r *categoryRepo) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	existing := make([]string, 0, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id IN ?", ids).Pluck("id", &existing).Error
	if err != nil {
		return nil, storeError("look up categories", err, nil, nil)
	}
	return existing, nil
}

// CountNews returns how many news items are filed under the category
func (r *categoryRepo) CountNews(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CategoryNews{}).Where("category_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, storeError("count category news", err, nil, nil)
	}
	return count, nil
}

// SetHomepage toggles homepage selection and position
func (r *categoryRepo) SetHomepage(ctx context.Context, id string, selected bool, order int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"selected":   selected,
			"home_order": order,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return storeError("update category homepage selection", result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category. The category_news foreign key restricts deletes
// of categories that still have news, surfacing as ErrCategoryInUse.
func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if isForeignKeyViolation(result.Error) {
		return ErrCategoryInUse
	}
	if result.Error != nil {
		return storeError("delete category", result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// CountCreatedBetween counts categories created in [from, to)
func (r *categoryRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, storeError("count categories", err, nil, nil)
	}
	return count, nil
}
