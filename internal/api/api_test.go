package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/api"
	"github.com/news-portal-api/internal/auth"
	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/mocks"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

const (
	adminToken      = "admin-token"
	journalistToken = "journalist-token"
	readerToken     = "reader-token"
)

type testEnv struct {
	router     *gin.Engine
	categories *mocks.MockCategoryRepository
	media      *mocks.MockMediaRepository
	news       *mocks.MockNewsRepository
	feed       *mocks.MockFeedRepository
}

type fakeHealth struct {
	err error
}

func (f fakeHealth) HealthCheck(ctx context.Context) error {
	return f.err
}

func (f fakeHealth) Stats() sql.DBStats {
	return sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2}
}

func setupTestRouter(t *testing.T, health api.HealthChecker) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, categories, media, news, feed := mocks.NewMockRepositories()

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "8080", RequestTimeout: 5 * time.Second},
		Homepage: config.HomepageConfig{NewsPerCategory: 4, TickerLimit: 30},
	}

	resolver, err := auth.NewStaticTokenResolver(
		adminToken + ":ADMIN:admin-1," + journalistToken + ":JOURNALIST:journo-1," + readerToken + ":USER:reader-1")
	if err != nil {
		t.Fatalf("failed to build resolver: %v", err)
	}

	log := zerolog.Nop()
	services := service.NewServices(repos, cfg, mocks.NewMockPublisher(), log)
	router := api.NewRouter(services, resolver, health, cfg, log)

	return &testEnv{
		router:     router,
		categories: categories,
		media:      media,
		news:       news,
		feed:       feed,
	}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return response
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter(t, fakeHealth{})

	w := env.do("GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decode(t, w)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "news-portal-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}

	database, ok := response["database"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected database pool stats, got %v", response["database"])
	}
	if database["open_connections"] != float64(3) || database["in_use"] != float64(1) || database["idle"] != float64(2) {
		t.Errorf("Unexpected pool stats: %v", database)
	}
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	env := setupTestRouter(t, fakeHealth{err: errors.New("connection refused")})

	w := env.do("GET", "/health", "", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestDashboard_Unauthenticated(t *testing.T) {
	env := setupTestRouter(t, nil)

	for _, token := range []string{"", "unknown-token"} {
		w := env.do("GET", "/v1/dashboard/categories", token, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("token %q: expected status 401, got %d", token, w.Code)
		}

		response := decode(t, w)
		if response["redirect"] != "/" {
			t.Errorf("Expected redirect '/', got %v", response["redirect"])
		}
		if response["code"] != "unauthorized" {
			t.Errorf("Expected code 'unauthorized', got %v", response["code"])
		}
	}
}

func TestDashboard_ReaderForbidden(t *testing.T) {
	env := setupTestRouter(t, nil)

	w := env.do("GET", "/v1/dashboard/categories", readerToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected status 403, got %d", w.Code)
	}

	response := decode(t, w)
	if response["redirect"] != "/pending" {
		t.Errorf("Expected redirect '/pending', got %v", response["redirect"])
	}
}

func TestCreateCategory(t *testing.T) {
	env := setupTestRouter(t, nil)

	body := models.AddCategoryRequest{Name: "Crime", Slug: "crime", Description: "All crime related news"}
	w := env.do("POST", "/v1/dashboard/categories", journalistToken, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var category models.Category
	json.Unmarshal(w.Body.Bytes(), &category)
	if category.Slug != "crime" {
		t.Errorf("Expected slug 'crime', got %q", category.Slug)
	}
	if category.ID == "" {
		t.Error("Expected generated id")
	}
}

func TestCreateCategory_ValidationErrors(t *testing.T) {
	env := setupTestRouter(t, nil)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedField  string
	}{
		{
			name:           "short description",
			body:           models.AddCategoryRequest{Name: "Crime", Slug: "crime", Description: "short"},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "description",
		},
		{
			name:           "slug with spaces",
			body:           models.AddCategoryRequest{Name: "Crime", Slug: "crime news", Description: "All crime related news"},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "slug",
		},
		{
			name:           "malformed body",
			body:           "not an object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do("POST", "/v1/dashboard/categories", adminToken, tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			response := decode(t, w)
			if response["code"] != "validation_error" {
				t.Errorf("Expected code 'validation_error', got %v", response["code"])
			}
			if tt.expectedField == "" {
				return
			}
			fields, ok := response["fields"].([]interface{})
			if !ok || len(fields) != 1 {
				t.Fatalf("Expected one field error, got %v", response["fields"])
			}
			if field := fields[0].(map[string]interface{})["field"]; field != tt.expectedField {
				t.Errorf("Expected field %q, got %v", tt.expectedField, field)
			}
		})
	}

	if len(env.categories.Categories) != 0 {
		t.Errorf("Expected no categories stored, got %d", len(env.categories.Categories))
	}
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	env := setupTestRouter(t, nil)

	body := models.AddCategoryRequest{Name: "Sports", Slug: "sports", Description: "Cricket, football and more"}
	if w := env.do("POST", "/v1/dashboard/categories", adminToken, body); w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	w := env.do("POST", "/v1/dashboard/categories", adminToken, body)
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected status 409, got %d", w.Code)
	}
	if response := decode(t, w); response["code"] != "conflict" {
		t.Errorf("Expected code 'conflict', got %v", response["code"])
	}
}

func TestDeleteCategory(t *testing.T) {
	env := setupTestRouter(t, nil)

	env.categories.Categories["busy"] = &models.Category{ID: "busy", Slug: "busy"}
	env.categories.NewsCounts["busy"] = 2
	env.categories.Categories["idle"] = &models.Category{ID: "idle", Slug: "idle"}

	tests := []struct {
		name           string
		id             string
		token          string
		expectedStatus int
	}{
		{"journalist cannot delete", "idle", journalistToken, http.StatusForbidden},
		{"category with news", "busy", adminToken, http.StatusConflict},
		{"missing category", "ghost", adminToken, http.StatusNotFound},
		{"admin deletes", "idle", adminToken, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do("DELETE", "/v1/dashboard/categories/"+tt.id, tt.token, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}

	if _, ok := env.categories.Categories["busy"]; !ok {
		t.Error("category with news must survive")
	}
}

func TestSuggestSlug(t *testing.T) {
	env := setupTestRouter(t, nil)

	w := env.do("GET", "/v1/dashboard/categories/slug?name=Crime+%26+Law+News", journalistToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if response := decode(t, w); response["slug"] != "crime-law-news" {
		t.Errorf("Expected slug 'crime-law-news', got %v", response["slug"])
	}

	w = env.do("GET", "/v1/dashboard/categories/slug", journalistToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without name, got %d", w.Code)
	}
}

func TestHomepage(t *testing.T) {
	env := setupTestRouter(t, nil)
	env.feed.Sections = []models.CategorySection{
		{ID: "c1", Name: "Crime", Slug: "crime", Link: models.CategoryLink("crime"), News: []models.NewsCard{
			{ID: "n1", Title: "Robbery", Slug: "robbery"},
		}},
		{ID: "c2", Name: "Sports", Slug: "sports", Link: models.CategoryLink("sports"), News: []models.NewsCard{}},
	}

	w := env.do("GET", "/v1/home/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Categories []models.CategorySection `json:"categories"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response.Categories) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(response.Categories))
	}
	if response.Categories[0].Link != "/category/crime" {
		t.Errorf("Expected link '/category/crime', got %q", response.Categories[0].Link)
	}
	if response.Categories[1].News == nil {
		t.Error("Expected empty news list, got null")
	}
}

func TestHomepage_StoreFailure(t *testing.T) {
	env := setupTestRouter(t, nil)
	env.feed.Err = errors.New("connection reset by peer")

	w := env.do("GET", "/v1/home/categories", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("connection reset")) {
		t.Error("store cause must not leak to clients")
	}
}

func TestTicker_Fallback(t *testing.T) {
	env := setupTestRouter(t, nil)
	env.feed.Err = errors.New("timeout")

	w := env.do("GET", "/v1/home/ticker", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var feed models.TickerFeed
	json.Unmarshal(w.Body.Bytes(), &feed)
	if !feed.Fallback {
		t.Error("Expected fallback flag")
	}
	if feed.Items == nil || len(feed.Items) != 0 {
		t.Errorf("Expected empty items, got %v", feed.Items)
	}
}

func TestNewsBySlug(t *testing.T) {
	env := setupTestRouter(t, nil)
	env.news.News["n1"] = &models.News{ID: "n1", Slug: "live", Status: models.NewsStatusPublished}
	env.news.News["n2"] = &models.News{ID: "n2", Slug: "draft", Status: models.NewsStatusDraft}

	if w := env.do("GET", "/v1/news/live", "", nil); w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w := env.do("GET", "/v1/news/draft", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for draft, got %d", w.Code)
	}
}

func TestCategoryNewsPage(t *testing.T) {
	env := setupTestRouter(t, nil)
	env.categories.Categories["c1"] = &models.Category{ID: "c1", Slug: "crime"}
	env.news.News["n1"] = &models.News{ID: "n1", Slug: "a", Status: models.NewsStatusPublished}
	env.news.Links["n1"] = []string{"c1"}

	w := env.do("GET", "/v1/categories/crime/news?limit=10", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var page models.CategoryPage
	json.Unmarshal(w.Body.Bytes(), &page)
	if len(page.News) != 1 || page.Limit != 10 {
		t.Errorf("Unexpected page: %+v", page)
	}

	if w := env.do("GET", "/v1/categories/crime/news?limit=ten", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for bad limit, got %d", w.Code)
	}
}

func TestMediaEndpoints(t *testing.T) {
	env := setupTestRouter(t, nil)

	body := models.AddMediaRequest{Title: "cover", URL: "https://cdn/cover.jpg", Type: models.MediaTypeImage, Size: 10, MimeType: "image/jpeg"}
	w := env.do("POST", "/v1/dashboard/media", journalistToken, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	if w := env.do("GET", "/v1/dashboard/media?type=IMAGE", journalistToken, nil); w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w := env.do("GET", "/v1/dashboard/media?type=GIF", journalistToken, nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown type, got %d", w.Code)
	}
}

func TestCreateNews_UnknownCategory(t *testing.T) {
	env := setupTestRouter(t, nil)

	body := models.CreateNewsRequest{Title: "Story", Content: "Body", Slug: "story", CategoryIDs: []string{"ghost"}}
	w := env.do("POST", "/v1/dashboard/news", journalistToken, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if len(env.news.News) != 0 {
		t.Error("news must not be stored")
	}
}

func TestOverview(t *testing.T) {
	env := setupTestRouter(t, nil)
	day := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	env.news.News["n1"] = &models.News{ID: "n1", Slug: "a", Status: models.NewsStatusPublished, CreatedAt: day}

	w := env.do("GET", "/v1/dashboard/overview?from=2024-05-01&to=2024-05-10", journalistToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if response := decode(t, w); response["news_total"].(float64) != 1 {
		t.Errorf("Expected 1 news in range, got %v", response["news_total"])
	}

	tests := []struct {
		name  string
		query string
	}{
		{"inverted range", "?from=2024-05-10&to=2024-05-01"},
		{"bad date", "?from=10/05/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do("GET", "/v1/dashboard/overview"+tt.query, journalistToken, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}
