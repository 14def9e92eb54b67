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

// mediaService is the concrete implementation of MediaService
type mediaService struct {
	repo      repository.MediaRepository
	validator *validation.Validator
	events    *emitter
	log       zerolog.Logger
}

// newMediaService creates a new MediaService
func newMediaService(repo repository.MediaRepository, v *validation.Validator, e *emitter, log zerolog.Logger) *mediaService {
	return &mediaService{
		repo:      repo,
		validator: v,
		events:    e,
		log:       log.With().Str("service", "media").Logger(),
	}
}

// List returns the whole media library, newest first
func (s *mediaService) List(ctx context.Context) ([]models.Media, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// ListByType returns the media of one type, newest first
func (s *mediaService) ListByType(ctx context.Context, mediaType models.MediaType) ([]models.Media, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}
	if !models.ValidMediaTypes[mediaType] {
		return nil, apperrors.NewValidationError("invalid media type", apperrors.FieldError{
			Field:   "type",
			Message: "must be one of: IMAGE, VIDEO, AUDIO, DOCUMENT",
			Value:   string(mediaType),
		})
	}
	return s.repo.ListByType(ctx, mediaType)
}

// Add registers the metadata of an uploaded asset
func (s *mediaService) Add(ctx context.Context, req *models.AddMediaRequest) (*models.Media, error) {
	principal, err := auth.RequireDashboard(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req, "invalid media"); err != nil {
		return nil, err
	}

	media := &models.Media{
		Title:       req.Title,
		URL:         req.URL,
		Type:        req.Type,
		Description: req.Description,
		Size:        req.Size,
		MimeType:    req.MimeType,
	}
	if err := s.repo.Create(ctx, media); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("media_id", media.ID).
		Str("type", string(media.Type)).
		Int64("size", media.Size).
		Str("user_id", principal.UserID).
		Msg("Media added")
	s.events.emit(ctx, events.MediaCreated, media.ID, "", "")

	return media, nil
}

// Get returns one media record
func (s *mediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a media record; news that used it keep no media
func (s *mediaService) Delete(ctx context.Context, id string) error {
	principal, err := auth.RequireEditor(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("media_id", id).Str("user_id", principal.UserID).Msg("Media deleted")
	s.events.emit(ctx, events.MediaDeleted, id, "", "")

	return nil
}
