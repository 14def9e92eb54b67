package service

import (
	"context"

	"github.com/news-portal-api/internal/auth"
	"github.com/news-portal-api/internal/events"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// categoryService is the concrete implementation of CategoryService
type categoryService struct {
	repo      repository.CategoryRepository
	validator *validation.Validator
	events    *emitter
	log       zerolog.Logger
}

// newCategoryService creates a new CategoryService
func newCategoryService(repo repository.CategoryRepository, v *validation.Validator, e *emitter, log zerolog.Logger) *categoryService {
	return &categoryService{
		repo:      repo,
		validator: v,
		events:    e,
		log:       log.With().Str("service", "category").Logger(),
	}
}

// Add creates a category. The slug is stored exactly as submitted.
func (s *categoryService) Add(ctx context.Context, req *models.AddCategoryRequest) (*models.Category, error) {
	principal, err := auth.RequireDashboard(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req, "invalid category"); err != nil {
		return nil, err
	}

	taken, err := s.repo.SlugExists(ctx, req.Slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrCategorySlugTaken
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	// the unique index settles races the pre-check misses
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("category_id", category.ID).
		Str("slug", category.Slug).
		Str("user_id", principal.UserID).
		Msg("Category created")
	s.events.emit(ctx, events.CategoryCreated, category.ID, category.Slug, "")

	return category, nil
}

// Update edits name, slug and description of an existing category
func (s *categoryService) Update(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req, "invalid category"); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.SlugExists(ctx, req.Slug, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrCategorySlugTaken
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", id).Str("slug", category.Slug).Msg("Category updated")
	s.events.emit(ctx, events.CategoryUpdated, category.ID, category.Slug, "")

	return category, nil
}

// Get returns the category with the given slug
func (s *categoryService) Get(ctx context.Context, slug string) (*models.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// GetByID returns the category with the given id
func (s *categoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all categories, newest first
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

// Delete removes a category that has no news filed under it
func (s *categoryService) Delete(ctx context.Context, id string) error {
	principal, err := auth.RequireEditor(ctx)
	if err != nil {
		return err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountNews(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().
		Str("category_id", id).
		Str("slug", category.Slug).
		Str("user_id", principal.UserID).
		Msg("Category deleted")
	s.events.emit(ctx, events.CategoryDeleted, id, category.Slug, "")

	return nil
}

// SetHomepage selects or deselects a category for the homepage and sets its position
func (s *categoryService) SetHomepage(ctx context.Context, id string, req *models.HomepageSelectionRequest) (*models.Category, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req, "invalid homepage selection"); err != nil {
		return nil, err
	}

	if err := s.repo.SetHomepage(ctx, id, req.Selected, req.Order); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("category_id", id).
		Bool("selected", req.Selected).
		Int("order", req.Order).
		Msg("Category homepage selection changed")
	s.events.emit(ctx, events.CategoryUpdated, category.ID, category.Slug, "")

	return category, nil
}

// SuggestSlug derives a URL-safe slug from a category name
func (s *categoryService) SuggestSlug(name string) string {
	return validation.GenerateSlug(name)
}
