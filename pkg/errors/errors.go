package errors

import (
	"errors"
	"net/http"
	"strings"
)

// Code identifies an error kind in API responses
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeConflict     Code = "conflict"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	CodePermission   Code = "forbidden"
	CodeStore        Code = "store_error"
	CodeInternal     Code = "internal_error"
)

// FieldError describes a single invalid input field
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidationError is returned when input violates a constraint before persistence
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// TransientStoreError wraps an unexpected failure of the underlying store
type TransientStoreError struct {
	Message string
	Cause   error
}

func (e *TransientStoreError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *TransientStoreError) Unwrap() error {
	return e.Cause
}

// Constructors
func NewValidationError(msg string, fields ...FieldError) error {
	return &ValidationError{Message: msg, Fields: fields}
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &UnauthorizedError{Message: msg}
}

func NewPermissionError(msg string) error {
	return &PermissionError{Message: msg}
}

func NewTransientStoreError(msg string, cause error) error {
	return &TransientStoreError{Message: msg, Cause: cause}
}

// Type checks
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

func IsPermissionError(err error) bool {
	var e *PermissionError
	return errors.As(err, &e)
}

func IsTransientStoreError(err error) bool {
	var e *TransientStoreError
	return errors.As(err, &e)
}

// Fields returns the field details of a validation error, if any
func Fields(err error) []FieldError {
	var e *ValidationError
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// Mapper maps domain errors to HTTP status codes
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapErrorToHttp returns the status, the client-facing code and message for err.
// Store failures never leak their cause to the client.
func (m *Mapper) MapErrorToHttp(err error) (int, Code, string) {
	if err == nil {
		return http.StatusOK, "", ""
	}

	switch {
	case IsValidationError(err):
		return http.StatusBadRequest, CodeValidation, err.Error()
	case IsNotFoundError(err):
		return http.StatusNotFound, CodeNotFound, err.Error()
	case IsConflictError(err):
		return http.StatusConflict, CodeConflict, err.Error()
	case IsUnauthorizedError(err):
		return http.StatusUnauthorized, CodeUnauthorized, err.Error()
	case IsPermissionError(err):
		return http.StatusForbidden, CodePermission, err.Error()
	case IsTransientStoreError(err):
		return http.StatusInternalServerError, CodeStore, "internal server error"
	default:
		return http.StatusInternalServerError, CodeInternal, "internal server error"
	}
}
