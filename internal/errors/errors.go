// Package errors provides shared error types for the webhook.site API clients.
package errors

import (
	"fmt"
)

// NotFoundError indicates a token or captured request does not exist
// (or has expired) on webhook.site.
type NotFoundError struct {
	EntityType string // "token", "request"
	Identifier string // token UUID, request UUID, or alias
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found or expired: %s", e.EntityType, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewTokenNotFoundError creates a NotFoundError for a webhook token lookup.
func NewTokenNotFoundError(token string) *NotFoundError {
	return &NotFoundError{
		EntityType: "token",
		Identifier: token,
	}
}

// NewRequestNotFoundError creates a NotFoundError for a captured request lookup.
func NewRequestNotFoundError(requestID string) *NotFoundError {
	return &NotFoundError{
		EntityType: "request",
		Identifier: requestID,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// APIError represents a non-success HTTP response from webhook.site.
type APIError struct {
	Method     string // HTTP method of the failed call
	Path       string // request path, e.g. "/token/<uuid>/requests"
	StatusCode int
	Body       string // truncated response body for diagnostics
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s returned %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
