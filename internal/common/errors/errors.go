// Package errors provides standardized error handling for the assistant core.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCaseNotFound  ErrorCode = "CASE_NOT_FOUND"
	ErrCodeStatsNotFound ErrorCode = "STATS_NOT_FOUND"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeStoreQueryFailed         ErrorCode = "STORE_QUERY_FAILED"
	ErrCodeStoreQueryTimeout        ErrorCode = "STORE_QUERY_TIMEOUT"

	ErrCodeSearchTimeout     ErrorCode = "SEARCH_TIMEOUT"
	ErrCodeSearchFailed      ErrorCode = "SEARCH_FAILED"
	ErrCodeSearchUnavailable ErrorCode = "SEARCH_UNAVAILABLE"

	ErrCodeComposeFailed         ErrorCode = "COMPOSE_FAILED"
	ErrCodeComplaintCreateFailed ErrorCode = "COMPLAINT_CREATE_FAILED"
	ErrCodeNotificationFailed    ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewCaseNotFoundError creates a non-retryable lookup-miss error. The
// composer surfaces it as a templated "not found" response, never a crash.
func NewCaseNotFoundError(caseNumber string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCaseNotFound,
		Message:   "Case record not found",
		Details:   fmt.Sprintf("caseNumber: %s", caseNumber),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStatsNotFoundError creates a non-retryable lookup-miss error.
func NewStatsNotFoundError(location string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStatsNotFound,
		Message:   "No crime statistics for location",
		Details:   fmt.Sprintf("location: %s", location),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreQueryFailedError creates a retryable store query error.
func NewStoreQueryFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreQueryFailed,
		Message:   "Record store query error",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchTimeoutError creates a retryable augmentation timeout error.
func NewSearchTimeoutError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchTimeout,
		Message:   "Search augmentation timed out",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchFailedError creates an augmentation error. Composition recovers
// by proceeding without enrichment.
func NewSearchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchFailed,
		Message:   "Search augmentation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchUnavailableError creates a non-retryable error raised while the
// search circuit breaker is open.
func NewSearchUnavailableError(until time.Time) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchUnavailable,
		Message:   "Search provider temporarily unavailable",
		Details:   fmt.Sprintf("circuit open until %s", until.Format(time.RFC3339)),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewComposeFailedError creates a non-retryable composition error. The
// caller boundary substitutes the fixed bilingual apology for it.
func NewComposeFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeComposeFailed,
		Message:   "Response composition failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewComplaintCreateFailedError creates a retryable complaint intake error.
func NewComplaintCreateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeComplaintCreateFailed,
		Message:   "Complaint record creation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationFailedError creates a retryable notification error.
// Acknowledgement sends are best-effort and never surfaced to the citizen.
func NewNotificationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationFailed,
		Message:   "Acknowledgement notification failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable session lookup error.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// GetRetryCount returns how many retries a failed operation with this code
// deserves before degrading.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed, ErrCodeStoreQueryFailed, ErrCodeNotificationFailed:
		return 3
	case ErrCodeSearchTimeout, ErrCodeStoreQueryTimeout, ErrCodeComplaintCreateFailed:
		return 2
	case ErrCodeSearchFailed:
		return 1
	default:
		return 0
	}
}

// GetErrorCategory maps a code onto the failure taxonomy: lookup misses are
// surfaced as templated responses, augmentation faults degrade to an empty
// result list, and composition faults are replaced by the apology fallback.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeCaseNotFound, ErrCodeStatsNotFound, ErrCodeSessionNotFound:
		return "lookup_miss"
	case ErrCodeSearchTimeout, ErrCodeSearchFailed, ErrCodeSearchUnavailable:
		return "augmentation_fault"
	case ErrCodeComposeFailed:
		return "composition_fault"
	case ErrCodeInvalidRequest:
		return "validation"
	default:
		return "infrastructure"
	}
}

// HTTPStatus maps a code to the status the API boundary responds with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest:
		return 400
	case ErrCodeCaseNotFound, ErrCodeStatsNotFound, ErrCodeSessionNotFound:
		return 404
	case ErrCodeSearchUnavailable:
		return 503
	default:
		return 500
	}
}
