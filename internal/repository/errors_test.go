package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	apperrors "github.com/news-portal-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStoreError(t *testing.T) {
	sentinel := apperrors.NewConflictError("slug taken")

	tests := []struct {
		name     string
		err      error
		conflict error
		check    func(t *testing.T, got error)
	}{
		{
			name: "nil passes through",
			err:  nil,
			check: func(t *testing.T, got error) {
				assert.NoError(t, got)
			},
		},
		{
			name:     "postgres unique violation uses sentinel",
			err:      &pq.Error{Code: "23505"},
			conflict: sentinel,
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, sentinel)
			},
		},
		{
			name:     "postgres foreign key violation is a conflict but not the slug sentinel",
			err:      &pq.Error{Code: "23503"},
			conflict: sentinel,
			check: func(t *testing.T, got error) {
				assert.True(t, apperrors.IsConflictError(got))
				assert.NotErrorIs(t, got, sentinel)
			},
		},
		{
			name: "sqlite foreign key violation is a conflict",
			err:  fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}),
			check: func(t *testing.T, got error) {
				assert.True(t, apperrors.IsConflictError(got))
			},
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			check: func(t *testing.T, got error) {
				assert.True(t, apperrors.IsNotFoundError(got))
			},
		},
		{
			name: "anything else is transient",
			err:  errors.New("connection reset"),
			check: func(t *testing.T, got error) {
				assert.True(t, apperrors.IsTransientStoreError(got))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, storeError("save", tt.err, nil, tt.conflict))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.False(t, isForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
}
