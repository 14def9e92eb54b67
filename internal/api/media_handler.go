package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// MediaHandler handles dashboard media library endpoints
type MediaHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(services *service.Services, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		services: services,
		log:      log.With().Str("handler", "media").Logger(),
	}
}

// List handles GET /v1/dashboard/media with an optional ?type= filter
func (h *MediaHandler) List(c *gin.Context) {
	var (
		media []models.Media
		err   error
	)
	if mediaType := c.Query("type"); mediaType != "" {
		media, err = h.services.Media.ListByType(c.Request.Context(), models.MediaType(mediaType))
	} else {
		media, err = h.services.Media.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": media, "count": len(media)})
}

// Create handles POST /v1/dashboard/media
func (h *MediaHandler) Create(c *gin.Context) {
	var req models.AddMediaRequest
	if !bindJSON(c, &req) {
		return
	}

	media, err := h.services.Media.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

// Get handles GET /v1/dashboard/media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	media, err := h.services.Media.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

// Delete handles DELETE /v1/dashboard/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.services.Media.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
