package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/news-portal-api/pkg/errors"
)

var mapper = apperrors.NewMapper()

// respondError writes err as {"error", "code"} plus field details for
// validation errors and a redirect hint for auth failures
func respondError(c *gin.Context, err error) {
	status, code, msg := mapper.MapErrorToHttp(err)

	body := gin.H{
		"error": msg,
		"code":  code,
	}
	if fields := apperrors.Fields(err); len(fields) > 0 {
		body["fields"] = fields
	}
	switch code {
	case apperrors.CodeUnauthorized:
		body["redirect"] = "/"
	case apperrors.CodePermission:
		body["redirect"] = "/pending"
	}

	c.JSON(status, body)
}

// bindJSON decodes the request body into obj, reporting malformed input as a validation error
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter
func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid query parameter", apperrors.FieldError{
			Field:   name,
			Message: "must be an integer",
			Value:   raw,
		})
	}
	return n, nil
}
