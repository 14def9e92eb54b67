package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/service"
	apperrors "github.com/news-portal-api/pkg/errors"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// OverviewHandler handles the dashboard analytics endpoint
type OverviewHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewOverviewHandler creates a new OverviewHandler
func NewOverviewHandler(services *service.Services, log zerolog.Logger) *OverviewHandler {
	return &OverviewHandler{
		services: services,
		log:      log.With().Str("handler", "overview").Logger(),
	}
}

// Summary handles GET /v1/dashboard/overview?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Both days are inclusive.
func (h *OverviewHandler) Summary(c *gin.Context) {
	from, err := queryDate(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := queryDate(c, "to")
	if err != nil {
		respondError(c, err)
		return
	}

	// the picker's "to" day is inclusive; the service range is half-open
	if !to.IsZero() && !from.After(to) {
		to = to.AddDate(0, 0, 1)
	}

	overview, err := h.services.Overview.Summary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func queryDate(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("invalid date range", apperrors.FieldError{
			Field:   name,
			Message: "must be a date formatted as YYYY-MM-DD",
			Value:   raw,
		})
	}
	return t, nil
}
