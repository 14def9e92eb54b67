package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	apperrors "github.com/news-portal-api/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrCategoryNotFound is returned when a category id or slug does not exist
	ErrCategoryNotFound = apperrors.NewNotFoundError("category not found")

	// ErrCategorySlugTaken is returned when another category already uses the slug
	ErrCategorySlugTaken = apperrors.NewConflictError("category slug already in use")

	// ErrCategoryInUse is returned when deleting a category that still has news filed under it
	ErrCategoryInUse = apperrors.NewConflictError("category still has news filed under it")

	// ErrMediaNotFound is returned when a media id does not exist
	ErrMediaNotFound = apperrors.NewNotFoundError("media not found")

	// ErrNewsNotFound is returned when a news id or slug does not exist
	ErrNewsNotFound = apperrors.NewNotFoundError("news not found")

	// ErrNewsSlugTaken is returned when another news item already uses the slug
	ErrNewsSlugTaken = apperrors.NewConflictError("news slug already in use")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// storeError translates a gorm/driver error into the domain error taxonomy.
// notFound and conflict replace record-not-found and unique violations when non-nil.
func storeError(op string, err error, notFound, conflict error) error {
	if err == nil {
		return nil
	}

	// errors returned from inside a transaction callback are already translated
	if apperrors.IsNotFoundError(err) || apperrors.IsConflictError(err) || apperrors.IsValidationError(err) ||
		apperrors.IsTransientStoreError(err) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(op + ": record not found")
	case isUniqueViolation(err) && conflict != nil:
		return conflict
	case isUniqueViolation(err):
		return apperrors.NewConflictError(op + ": duplicate value")
	case isForeignKeyViolation(err):
		return apperrors.NewConflictError(op + ": referenced record missing or still in use")
	default:
		return apperrors.NewTransientStoreError("failed to "+op, err)
	}
}
