package service

import (
	"context"

	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/rs/zerolog"
)

// feedService is the concrete implementation of FeedService
type feedService struct {
	repo            repository.FeedRepository
	newsPerCategory int
	tickerLimit     int
	log             zerolog.Logger
}

// newFeedService creates a new FeedService
func newFeedService(repo repository.FeedRepository, cfg config.HomepageConfig, log zerolog.Logger) *feedService {
	newsPerCategory := cfg.NewsPerCategory
	if newsPerCategory <= 0 {
		newsPerCategory = 4
	}

	tickerLimit := cfg.TickerLimit
	if tickerLimit <= 0 || tickerLimit > config.MaxTickerItems {
		tickerLimit = config.MaxTickerItems
	}

	return &feedService{
		repo:            repo,
		newsPerCategory: newsPerCategory,
		tickerLimit:     tickerLimit,
		log:             log.With().Str("service", "feed").Logger(),
	}
}

// Homepage returns the selected categories with their latest published news.
// A store failure fails the whole call; no partial homepage is returned.
func (s *feedService) Homepage(ctx context.Context) ([]models.CategorySection, error) {
	sections, err := s.repo.HomepageSections(ctx, s.newsPerCategory)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to aggregate homepage categories")
		return nil, err
	}
	if sections == nil {
		sections = make([]models.CategorySection, 0)
	}
	return sections, nil
}

// Ticker returns the latest published headlines. It never fails: an empty or
// failed read yields an empty feed with Fallback set.
func (s *feedService) Ticker(ctx context.Context) models.TickerFeed {
	headlines, err := s.repo.LatestHeadlines(ctx, s.tickerLimit)
	if err != nil {
		s.log.Warn().Err(err).Msg("Latest news unavailable, serving ticker fallback")
		return models.TickerFeed{Items: make([]models.Headline, 0), Fallback: true}
	}
	if len(headlines) == 0 {
		return models.TickerFeed{Items: make([]models.Headline, 0), Fallback: true}
	}
	if len(headlines) > s.tickerLimit {
		headlines = headlines[:s.tickerLimit]
	}
	return models.TickerFeed{Items: headlines}
}
