package errors

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper_MapErrorToHttp(t *testing.T) {
	mapper := NewMapper()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   Code
	}{
		{"validation", NewValidationError("invalid category", FieldError{Field: "name", Message: "too short"}), http.StatusBadRequest, CodeValidation},
		{"not found", NewNotFoundError("category not found"), http.StatusNotFound, CodeNotFound},
		{"conflict", NewConflictError("slug already in use"), http.StatusConflict, CodeConflict},
		{"unauthorized", NewUnauthorizedError("authentication required"), http.StatusUnauthorized, CodeUnauthorized},
		{"forbidden", NewPermissionError("role not allowed"), http.StatusForbidden, CodePermission},
		{"store", NewTransientStoreError("failed to list media", sql.ErrConnDone), http.StatusInternalServerError, CodeStore},
		{"wrapped conflict", fmt.Errorf("add category: %w", NewConflictError("slug already in use")), http.StatusConflict, CodeConflict},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := mapper.MapErrorToHttp(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestTransientStoreError_HidesCauseFromClients(t *testing.T) {
	err := NewTransientStoreError("failed to fetch media", sql.ErrConnDone)

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "failed to fetch media")

	_, _, msg := NewMapper().MapErrorToHttp(err)
	assert.Equal(t, "internal server error", msg)
}

func TestValidationError_Fields(t *testing.T) {
	err := NewValidationError("invalid category",
		FieldError{Field: "name", Message: "must be at least 2 characters"},
		FieldError{Field: "slug", Message: "must be at least 2 characters"},
	)

	fields := Fields(fmt.Errorf("wrapped: %w", err))
	assert.Len(t, fields, 2)
	assert.Equal(t, "invalid category: name: must be at least 2 characters; slug: must be at least 2 characters", err.Error())
	assert.Nil(t, Fields(NewConflictError("x")))
}
