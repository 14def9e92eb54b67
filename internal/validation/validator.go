package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/news-portal-api/internal/models"
	apperrors "github.com/news-portal-api/pkg/errors"
)

// Validator checks request payloads against their struct tags
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with the content rules registered
func NewValidator() *Validator {
	v := validator.New()

	// Report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsValidSlug(fl.Field().String())
	})
	_ = v.RegisterValidation("media_type", func(fl validator.FieldLevel) bool {
		return models.ValidMediaTypes[models.MediaType(fl.Field().String())]
	})
	_ = v.RegisterValidation("news_status", func(fl validator.FieldLevel) bool {
		return models.ValidNewsStatuses[models.NewsStatus(fl.Field().String())]
	})

	return &Validator{validate: v}
}

// Struct validates s and returns a *errors.ValidationError listing every failed field
func (v *Validator) Struct(s interface{}, msg string) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(msg + ": " + err.Error())
	}

	fields := make([]apperrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
			Value:   fe.Value(),
		})
	}
	return apperrors.NewValidationError(msg, fields...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "slug":
		return "must contain only lowercase letters, digits, underscores, hyphens or Bengali characters"
	case "media_type":
		return "must be one of: IMAGE, VIDEO, AUDIO, DOCUMENT"
	case "news_status":
		return "must be one of: DRAFT, PENDING, PUBLISHED, ARCHIVED"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
