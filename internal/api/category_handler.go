package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/service"
	apperrors "github.com/news-portal-api/pkg/errors"
	"github.com/rs/zerolog"
)

// CategoryHandler handles dashboard category endpoints
type CategoryHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(services *service.Services, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		services: services,
		log:      log.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /v1/dashboard/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}

// Create handles POST /v1/dashboard/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.AddCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.services.Category.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// Get handles GET /v1/dashboard/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.services.Category.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Update handles PUT /v1/dashboard/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.services.Category.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /v1/dashboard/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.services.Category.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetHomepage handles PUT /v1/dashboard/categories/:id/homepage
func (h *CategoryHandler) SetHomepage(c *gin.Context) {
	var req models.HomepageSelectionRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.services.Category.SetHomepage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// SuggestSlug handles GET /v1/dashboard/categories/slug?name=
func (h *CategoryHandler) SuggestSlug(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondError(c, apperrors.NewValidationError("name parameter is required", apperrors.FieldError{
			Field:   "name",
			Message: "is required",
		}))
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "slug": h.services.Category.SuggestSlug(name)})
}
