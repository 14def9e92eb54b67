package service

import (
	"context"
	"time"

	"github.com/news-portal-api/internal/auth"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	apperrors "github.com/news-portal-api/pkg/errors"
	"github.com/rs/zerolog"
)

const defaultOverviewWindow = 30 * 24 * time.Hour

// overviewService is the concrete implementation of OverviewService
type overviewService struct {
	repos *repository.Repositories
	now   func() time.Time
	log   zerolog.Logger
}

// newOverviewService creates a new OverviewService
func newOverviewService(repos *repository.Repositories, log zerolog.Logger) *overviewService {
	return &overviewService{
		repos: repos,
		now:   time.Now,
		log:   log.With().Str("service", "overview").Logger(),
	}
}

// Summary counts content created in [from, to). Zero bounds default to the last 30 days.
func (s *overviewService) Summary(ctx context.Context, from, to time.Time) (*models.Overview, error) {
	if _, err := auth.RequireDashboard(ctx); err != nil {
		return nil, err
	}

	if to.IsZero() {
		to = s.now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-defaultOverviewWindow)
	}
	if from.After(to) {
		return nil, apperrors.NewValidationError("invalid date range", apperrors.FieldError{
			Field:   "from",
			Message: "must not be after to",
			Value:   from.Format("2006-01-02"),
		})
	}

	byStatus, err := s.repos.News.CountByStatusBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	categories, err := s.repos.Category.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byType, err := s.repos.Media.CountByTypeBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	overview := &models.Overview{
		From:         from,
		To:           to,
		NewsByStatus: byStatus,
		Categories:   categories,
		MediaByType:  byType,
	}
	for _, n := range byStatus {
		overview.NewsTotal += n
	}
	for _, n := range byType {
		overview.Media += n
	}

	s.log.Debug().
		Time("from", from).
		Time("to", to).
		Int64("news", overview.NewsTotal).
		Msg("Overview computed")

	return overview, nil
}
