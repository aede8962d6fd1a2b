// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeDatabaseError      ErrorCode = "DATABASE_ERROR"

	// Business logic errors
	CodeInvalidProfile      ErrorCode = "INVALID_PROFILE"
	CodeInsufficientRecipes ErrorCode = "INSUFFICIENT_RECIPES"
	CodeCatalogUnavailable  ErrorCode = "CATALOG_UNAVAILABLE"
	CodeMixedUnits          ErrorCode = "MIXED_UNITS"
	CodePlanNotFound        ErrorCode = "PLAN_NOT_FOUND"
)

// AppError represents an application error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeInvalidProfile:
		return http.StatusBadRequest
	case CodeNotFound, CodePlanNotFound:
		return http.StatusNotFound
	case CodeInsufficientRecipes, CodeMixedUnits:
		return http.StatusUnprocessableEntity
	case CodeServiceUnavailable, CodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// Business domain specific errors

// NewInvalidProfileError creates an invalid profile error. Raised before any
// calculation runs; never retried.
func NewInvalidProfileError(details string) *AppError {
	return NewAppError(
		CodeInvalidProfile,
		"Health profile is invalid",
		details,
	)
}

// NewInsufficientRecipesError creates an insufficient recipes error. The
// same profile and catalog always reproduce it, so it must not be retried.
func NewInsufficientRecipesError(eligible, required int) *AppError {
	return NewAppError(
		CodeInsufficientRecipes,
		"Not enough recipes match your profile",
		fmt.Sprintf("%d eligible recipes found, at least %d required", eligible, required),
	).WithMetadata("eligible", eligible).WithMetadata("required", required)
}

// NewCatalogUnavailableError creates a catalog unavailable error. This is
// the only error class eligible for caller-side retry.
func NewCatalogUnavailableError(catalog string, cause error) *AppError {
	return NewAppError(
		CodeCatalogUnavailable,
		"Catalog unavailable",
		fmt.Sprintf("Failed to reach the %s", catalog),
	).WithCause(cause)
}

// NewMixedUnitsError creates a mixed units error. The catalog data is
// defective in a deterministic way; retrying cannot succeed.
func NewMixedUnitsError(foodName string, cause error) *AppError {
	return NewAppError(
		CodeMixedUnits,
		"Shopping aggregation found mixed units",
		fmt.Sprintf("Ingredient quantities for %s are not all in its canonical unit", foodName),
	).WithMetadata("food", foodName).WithCause(cause)
}

// NewPlanNotFoundError creates a plan not found error
func NewPlanNotFoundError(planID string) *AppError {
	return NewAppError(
		CodePlanNotFound,
		"Nutrition plan not found",
		fmt.Sprintf("Plan with ID %s does not exist", planID),
	).WithMetadata("plan_id", planID)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
			Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
		},
	}
}
