package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// PublicHandler serves the unauthenticated portal reads
type PublicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(services *service.Services, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		services: services,
		log:      log.With().Str("handler", "public").Logger(),
	}
}

// Homepage handles GET /v1/home/categories
func (h *PublicHandler) Homepage(c *gin.Context) {
	sections, err := h.services.Feed.Homepage(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": sections})
}

// Ticker handles GET /v1/home/ticker. It always answers 200.
func (h *PublicHandler) Ticker(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Feed.Ticker(c.Request.Context()))
}

// NewsBySlug handles GET /v1/news/:slug
func (h *PublicHandler) NewsBySlug(c *gin.Context) {
	news, err := h.services.News.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// ListCategories handles GET /v1/categories
func (h *PublicHandler) ListCategories(c *gin.Context) {
	categories, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}

// CategoryBySlug handles GET /v1/categories/:slug
func (h *PublicHandler) CategoryBySlug(c *gin.Context) {
	category, err := h.services.Category.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CategoryNews handles GET /v1/categories/:slug/news, the "see more" page
func (h *PublicHandler) CategoryNews(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		respondError(c, err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.services.News.ListByCategory(c.Request.Context(), c.Param("slug"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
