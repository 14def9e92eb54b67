package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// NewsHandler handles dashboard news endpoints
type NewsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(services *service.Services, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		services: services,
		log:      log.With().Str("handler", "news").Logger(),
	}
}

// List handles GET /v1/dashboard/news?status=&limit=&offset=
func (h *NewsHandler) List(c *gin.Context) {
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

	filter := models.NewsFilter{
		Status: models.NewsStatus(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	}
	news, err := h.services.News.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": news, "count": len(news)})
}

// Create handles POST /v1/dashboard/news
func (h *NewsHandler) Create(c *gin.Context) {
	var req models.CreateNewsRequest
	if !bindJSON(c, &req) {
		return
	}

	news, err := h.services.News.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

// UpdateStatus handles PUT /v1/dashboard/news/:id/status
func (h *NewsHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateNewsStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	news, err := h.services.News.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// SetCategories handles PUT /v1/dashboard/news/:id/categories
func (h *NewsHandler) SetCategories(c *gin.Context) {
	var req models.SetNewsCategoriesRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.News.SetCategories(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /v1/dashboard/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.services.News.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
