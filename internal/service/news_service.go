package service

import (
	"context"

	"github.com/news-portal-api/internal/auth"
	"github.com/news-portal-api/internal/events"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	apperrors "github.com/news-portal-api/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// newsService is the concrete implementation of NewsService
type newsService struct {
	repos     *repository.Repositories
	validator *validation.Validator
	events    *emitter
	log       zerolog.Logger
}

// newNewsService creates a new NewsService
func newNewsService(repos *repository.Repositories, v *validation.Validator, e *emitter, log zerolog.Logger) *newsService {
	return &newsService{
		repos:     repos,
		validator: v,
		events:    e,
		log:       log.With().Str("service", "news").Logger(),
	}
}

// Create writes a news item and files it under its categories
func (s *newsService) Create(ctx context.Context, req *models.CreateNewsRequest) (*models.News, error) {
	principal, err := auth.RequireDashboard(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req, "invalid news"); err != nil {
		return nil, err
	}

	taken, err := s.repos.News.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrNewsSlugTaken
	}

	if err := s.checkReferences(ctx, req.MediaID, req.CategoryIDs); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.NewsStatusDraft
	}

	news := &models.News{
		Title:   req.Title,
		Content: req.Content,
		Slug:    req.Slug,
		Status:  status,
		MediaID: req.MediaID,
	}
	if err := s.repos.News.Create(ctx, news, req.CategoryIDs); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("news_id", news.ID).
		Str("slug", news.Slug).
		Str("status", string(news.Status)).
		Int("categories", len(req.CategoryIDs)).
		Str("user_id", principal.UserID).
		Msg("News created")
	s.events.emit(ctx, events.NewsCreated, news.ID, news.Slug, string(news.Status))

	return news, nil
}

// GetBySlug returns a published news item. Unpublished news is reported as not found.
func (s *newsService) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	news, err := s.repos.News.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if news.Status != models.NewsStatusPublished {
		return nil, repository.ErrNewsNotFound
	}
	return news, nil
}

// List returns news for the dashboard, newest first
func (s *newsService) List(ctx context.Context, filter models.NewsFilter) ([]models.News, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}
	if filter.Status != "" && !models.ValidNewsStatuses[filter.Status] {
		return nil, apperrors.NewValidationError("invalid news filter", apperrors.FieldError{
			Field:   "status",
			Message: "must be one of: DRAFT, PENDING, PUBLISHED, ARCHIVED",
			Value:   string(filter.Status),
		})
	}
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)
	return s.repos.News.List(ctx, filter)
}

// UpdateStatus moves a news item through the editorial workflow
func (s *newsService) UpdateStatus(ctx context.Context, id string, req *models.UpdateNewsStatusRequest) (*models.News, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req, "invalid news status"); err != nil {
		return nil, err
	}

	if err := s.repos.News.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	news, err := s.repos.News.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("news_id", id).Str("status", string(req.Status)).Msg("News status changed")
	s.events.emit(ctx, events.NewsStatusChanged, news.ID, news.Slug, string(news.Status))

	return news, nil
}

// SetCategories replaces the set of categories a news item is filed under
func (s *newsService) SetCategories(ctx context.Context, id string, req *models.SetNewsCategoriesRequest) error {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, nil, req.CategoryIDs); err != nil {
		return err
	}

	if err := s.repos.News.SetCategories(ctx, id, req.CategoryIDs); err != nil {
		return err
	}

	s.log.Info().Str("news_id", id).Strs("category_ids", req.CategoryIDs).Msg("News categories replaced")
	return nil
}

// Delete removes a news item together with its category associations
func (s *newsService) Delete(ctx context.Context, id string) error {
	principal, err := auth.RequireEditor(ctx)
	if err != nil {
		return err
	}

	news, err := s.repos.News.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.News.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().
		Str("news_id", id).
		Str("slug", news.Slug).
		Str("user_id", principal.UserID).
		Msg("News deleted")
	s.events.emit(ctx, events.NewsDeleted, id, news.Slug, "")

	return nil
}

// ListByCategory returns one page of the published news of a category
func (s *newsService) ListByCategory(ctx context.Context, categorySlug string, limit, offset int) (*models.CategoryPage, error) {
	category, err := s.repos.Category.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	limit, offset = normalizePage(limit, offset)
	news, err := s.repos.News.ListPublishedByCategory(ctx, category.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &models.CategoryPage{
		Category: category,
		News:     news,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// checkReferences reports unknown media or category ids as field errors
func (s *newsService) checkReferences(ctx context.Context, mediaID *string, categoryIDs []string) error {
	var fields []apperrors.FieldError

	if mediaID != nil {
		exists, err := s.repos.Media.Exists(ctx, *mediaID)
		if err != nil {
			return err
		}
		if !exists {
			fields = append(fields, apperrors.FieldError{
				Field:   "media_id",
				Message: "media does not exist",
				Value:   *mediaID,
			})
		}
	}

	if len(categoryIDs) > 0 {
		existing, err := s.repos.Category.ExistingIDs(ctx, categoryIDs)
		if err != nil {
			return err
		}
		found := make(map[string]bool, len(existing))
		for _, id := range existing {
			found[id] = true
		}
		for _, id := range categoryIDs {
			if !found[id] {
				fields = append(fields, apperrors.FieldError{
					Field:   "category_ids",
					Message: "category does not exist",
					Value:   id,
				})
			}
		}
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError("invalid news references", fields...)
	}
	return nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
