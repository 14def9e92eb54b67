package service

import (
	"context"
	"time"

	"github.com/news-portal-api/internal/auth"
	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/events"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// CategoryService defines the interface for category management
type CategoryService interface {
	Add(ctx context.Context, req *models.AddCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	Get(ctx context.Context, slug string) (*models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id string) error
	SetHomepage(ctx context.Context, id string, req *models.HomepageSelectionRequest) (*models.Category, error)
	SuggestSlug(name string) string
}

// MediaService defines the interface for the media library
type MediaService interface {
	List(ctx context.Context) ([]models.Media, error)
	ListByType(ctx context.Context, mediaType models.MediaType) ([]models.Media, error)
	Add(ctx context.Context, req *models.AddMediaRequest) (*models.Media, error)
	Get(ctx context.Context, id string) (*models.Media, error)
	Delete(ctx context.Context, id string) error
}

// NewsService defines the interface for news editing and public news reads
type NewsService interface {
	Create(ctx context.Context, req *models.CreateNewsRequest) (*models.News, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
	List(ctx context.Context, filter models.NewsFilter) ([]models.News, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateNewsStatusRequest) (*models.News, error)
	SetCategories(ctx context.Context, id string, req *models.SetNewsCategoriesRequest) error
	Delete(ctx context.Context, id string) error
	ListByCategory(ctx context.Context, categorySlug string, limit, offset int) (*models.CategoryPage, error)
}

// FeedService defines the public homepage read paths
type FeedService interface {
	Homepage(ctx context.Context) ([]models.CategorySection, error)
	Ticker(ctx context.Context) models.TickerFeed
}

// OverviewService defines the dashboard analytics summary
type OverviewService interface {
	Summary(ctx context.Context, from, to time.Time) (*models.Overview, error)
}

// Services holds all service interfaces
type Services struct {
	Category CategoryService
	Media    MediaService
	News     NewsService
	Feed     FeedService
	Overview OverviewService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, publisher events.Publisher, log zerolog.Logger) *Services {
	v := validation.NewValidator()
	emitter := newEmitter(publisher, log)

	return &Services{
		Category: newCategoryService(repos.Category, v, emitter, log),
		Media:    newMediaService(repos.Media, v, emitter, log),
		News:     newNewsService(repos, v, emitter, log),
		Feed:     newFeedService(repos.Feed, cfg.Homepage, log),
		Overview: newOverviewService(repos, log),
	}
}

// emitter publishes content events after the store has committed.
// Publish failures are logged and never fail the calling operation.
type emitter struct {
	publisher events.Publisher
	log       zerolog.Logger
}

func newEmitter(publisher events.Publisher, log zerolog.Logger) *emitter {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &emitter{
		publisher: publisher,
		log:       log.With().Str("component", "events").Logger(),
	}
}

func (e *emitter) emit(ctx context.Context, eventType events.Type, entityID, slug, status string) {
	event := events.Event{
		Type:       eventType,
		EntityID:   entityID,
		Slug:       slug,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	if p, ok := auth.FromContext(ctx); ok {
		event.ActorID = p.UserID
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		e.log.Warn().
			Err(err).
			Str("event_type", string(eventType)).
			Str("entity_id", entityID).
			Msg("Failed to publish content event")
	}
}
