package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.CategoryRepository = (*MockCategoryRepository)(nil)
	_ repository.MediaRepository    = (*MockMediaRepository)(nil)
	_ repository.NewsRepository     = (*MockNewsRepository)(nil)
	_ repository.FeedRepository     = (*MockFeedRepository)(nil)
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories  map[string]*models.Category
	NewsCounts  map[string]int64
	Err         error
	DeleteCalls int
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[string]*models.Category),
		NewsCounts: make(map[string]int64),
	}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for _, c := range m.Categories {
		if c.Slug == category.Slug {
			return repository.ErrCategorySlugTaken
		}
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	category.UpdatedAt = category.CreatedAt
	stored := *category
	m.Categories[category.ID] = &stored
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if m.Err != nil {
		return m.Err
	}
	stored, ok := m.Categories[category.ID]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	stored.Name = category.Name
	stored.Slug = category.Slug
	stored.Description = category.Description
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *MockCategoryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, c := range m.Categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	categories := make([]models.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CreatedAt.After(categories[j].CreatedAt)
	})
	return categories, nil
}

func (m *MockCategoryRepository) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	existing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := m.Categories[id]; ok {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

func (m *MockCategoryRepository) CountNews(ctx context.Context, id string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.NewsCounts[id], nil
}

func (m *MockCategoryRepository) SetHomepage(ctx context.Context, id string, selected bool, order int) error {
	if m.Err != nil {
		return m.Err
	}
	c, ok := m.Categories[id]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	c.Selected = selected
	c.HomeOrder = order
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCalls++
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	if m.NewsCounts[id] > 0 {
		return repository.ErrCategoryInUse
	}
	delete(m.Categories, id)
	return nil
}

func (m *MockCategoryRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var count int64
	for _, c := range m.Categories {
		if inRange(c.CreatedAt, from, to) {
			count++
		}
	}
	return count, nil
}

// MockMediaRepository is a mock implementation of MediaRepository
type MockMediaRepository struct {
	Media map[string]*models.Media
	Err   error
}

func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{
		Media: make(map[string]*models.Media),
	}
}

func (m *MockMediaRepository) Create(ctx context.Context, media *models.Media) error {
	if m.Err != nil {
		return m.Err
	}
	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	if media.CreatedAt.IsZero() {
		media.CreatedAt = time.Now()
	}
	stored := *media
	m.Media[media.ID] = &stored
	return nil
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id string) (*models.Media, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	media, ok := m.Media[id]
	if !ok {
		return nil, repository.ErrMediaNotFound
	}
	copied := *media
	return &copied, nil
}

func (m *MockMediaRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.Media[id]
	return ok, nil
}

func (m *MockMediaRepository) List(ctx context.Context) ([]models.Media, error) {
	return m.ListByType(ctx, "")
}

func (m *MockMediaRepository) ListByType(ctx context.Context, mediaType models.MediaType) ([]models.Media, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	media := make([]models.Media, 0, len(m.Media))
	for _, item := range m.Media {
		if mediaType == "" || item.Type == mediaType {
			media = append(media, *item)
		}
	}
	sort.Slice(media, func(i, j int) bool {
		return media[i].CreatedAt.After(media[j].CreatedAt)
	})
	return media, nil
}

func (m *MockMediaRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Media[id]; !ok {
		return repository.ErrMediaNotFound
	}
	delete(m.Media, id)
	return nil
}

func (m *MockMediaRepository) CountByTypeBetween(ctx context.Context, from, to time.Time) (map[models.MediaType]int64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	counts := make(map[models.MediaType]int64)
	for _, item := range m.Media {
		if inRange(item.CreatedAt, from, to) {
			counts[item.Type]++
		}
	}
	return counts, nil
}

// MockNewsRepository is a mock implementation of NewsRepository.
// Links maps a news id to the categories it is filed under.
type MockNewsRepository struct {
	News  map[string]*models.News
	Links map[string][]string
	Err   error
}

func NewMockNewsRepository() *MockNewsRepository {
	return &MockNewsRepository{
		News:  make(map[string]*models.News),
		Links: make(map[string][]string),
	}
}

func (m *MockNewsRepository) Create(ctx context.Context, news *models.News, categoryIDs []string) error {
	if m.Err != nil {
		return m.Err
	}
	for _, n := range m.News {
		if n.Slug == news.Slug {
			return repository.ErrNewsSlugTaken
		}
	}
	if news.ID == "" {
		news.ID = uuid.New().String()
	}
	if news.CreatedAt.IsZero() {
		news.CreatedAt = time.Now()
	}
	stored := *news
	m.News[news.ID] = &stored
	m.Links[news.ID] = dedupe(categoryIDs)
	return nil
}

func (m *MockNewsRepository) GetByID(ctx context.Context, id string) (*models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	n, ok := m.News[id]
	if !ok {
		return nil, repository.ErrNewsNotFound
	}
	copied := *n
	return &copied, nil
}

func (m *MockNewsRepository) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, n := range m.News {
		if n.Slug == slug {
			copied := *n
			return &copied, nil
		}
	}
	return nil, repository.ErrNewsNotFound
}

func (m *MockNewsRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, n := range m.News {
		if n.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockNewsRepository) List(ctx context.Context, filter models.NewsFilter) ([]models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	news := make([]models.News, 0, len(m.News))
	for _, n := range m.News {
		if filter.Status == "" || n.Status == filter.Status {
			news = append(news, *n)
		}
	}
	return page(newestFirst(news), filter.Limit, filter.Offset), nil
}

func (m *MockNewsRepository) UpdateStatus(ctx context.Context, id string, status models.NewsStatus) error {
	if m.Err != nil {
		return m.Err
	}
	n, ok := m.News[id]
	if !ok {
		return repository.ErrNewsNotFound
	}
	n.Status = status
	return nil
}

func (m *MockNewsRepository) SetCategories(ctx context.Context, id string, categoryIDs []string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.News[id]; !ok {
		return repository.ErrNewsNotFound
	}
	m.Links[id] = dedupe(categoryIDs)
	return nil
}

func (m *MockNewsRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.News[id]; !ok {
		return repository.ErrNewsNotFound
	}
	delete(m.News, id)
	delete(m.Links, id)
	return nil
}

func (m *MockNewsRepository) ListPublishedByCategory(ctx context.Context, categoryID string, limit, offset int) ([]models.News, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	news := make([]models.News, 0)
	for id, categories := range m.Links {
		n := m.News[id]
		if n == nil || n.Status != models.NewsStatusPublished {
			continue
		}
		for _, c := range categories {
			if c == categoryID {
				news = append(news, *n)
				break
			}
		}
	}
	return page(newestFirst(news), limit, offset), nil
}

func (m *MockNewsRepository) CountByStatusBetween(ctx context.Context, from, to time.Time) (map[models.NewsStatus]int64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	counts := make(map[models.NewsStatus]int64)
	for _, n := range m.News {
		if inRange(n.CreatedAt, from, to) {
			counts[n.Status]++
		}
	}
	return counts, nil
}

// MockFeedRepository is a mock implementation of FeedRepository
type MockFeedRepository struct {
	Sections  []models.CategorySection
	Headlines []models.Headline
	Err       error

	LastNewsPerCategory int
	LastLimit           int
}

func NewMockFeedRepository() *MockFeedRepository {
	return &MockFeedRepository{
		Sections:  make([]models.CategorySection, 0),
		Headlines: make([]models.Headline, 0),
	}
}

func (m *MockFeedRepository) HomepageSections(ctx context.Context, newsPerCategory int) ([]models.CategorySection, error) {
	m.LastNewsPerCategory = newsPerCategory
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Sections, nil
}

func (m *MockFeedRepository) LatestHeadlines(ctx context.Context, limit int) ([]models.Headline, error) {
	m.LastLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Headlines) > limit {
		return m.Headlines[:limit], nil
	}
	return m.Headlines, nil
}

// NewMockRepositories wires fresh mocks into a Repositories aggregate
func NewMockRepositories() (*repository.Repositories, *MockCategoryRepository, *MockMediaRepository, *MockNewsRepository, *MockFeedRepository) {
	categories := NewMockCategoryRepository()
	media := NewMockMediaRepository()
	news := NewMockNewsRepository()
	feed := NewMockFeedRepository()

	repos := &repository.Repositories{
		Category: categories,
		Media:    media,
		News:     news,
		Feed:     feed,
	}
	return repos, categories, media, news, feed
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func newestFirst(news []models.News) []models.News {
	sort.Slice(news, func(i, j int) bool {
		return news[i].CreatedAt.After(news[j].CreatedAt)
	})
	return news
}

func page(news []models.News, limit, offset int) []models.News {
	if offset >= len(news) {
		return make([]models.News, 0)
	}
	news = news[offset:]
	if limit > 0 && limit < len(news) {
		news = news[:limit]
	}
	return news
}
