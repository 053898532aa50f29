package errors

import (
	"net/http"

	"bosskill/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Geo-related errors
	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"latitude must be in [-90, 90] and longitude in [-180, 180]",
		"",
	)

	ErrPointNotFound = NewBaseError(
		http.StatusNotFound,
		"POINT_NOT_FOUND",
		"point not found",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"unsupported point category",
		"",
	)

	ErrTowerNotFound = NewBaseError(
		http.StatusNotFound,
		"TOWER_NOT_FOUND",
		"tower not found",
		"",
	)

	ErrTowerThresholdNotMet = NewBaseError(
		http.StatusConflict,
		"TOWER_THRESHOLD_NOT_MET",
		"not enough co-located points to form a tower",
		"",
	)

	ErrBuildingNotFound = NewBaseError(
		http.StatusNotFound,
		"BUILDING_NOT_FOUND",
		"building not found",
		"",
	)

	// Quote-related errors
	ErrQuoteNotFound = NewBaseError(
		http.StatusNotFound,
		"QUOTE_NOT_FOUND",
		"quote not found",
		"",
	)

	ErrQuoteCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"QUOTE_CATEGORY_NOT_FOUND",
		"quote category not found",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"rating must be between 1 and 5",
		"",
	)

	// Feed-related errors
	ErrContentNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTENT_NOT_FOUND",
		"content not found",
		"",
	)

	ErrInvalidAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION",
		"unsupported action type",
		"",
	)

	// Check-in-related errors
	ErrAlreadyCheckedIn = NewBaseError(
		http.StatusConflict,
		"ALREADY_CHECKED_IN",
		"already checked in today",
		"",
	)

	// Points-related errors
	ErrWalletNotFound = NewBaseError(
		http.StatusNotFound,
		"WALLET_NOT_FOUND",
		"wallet not found",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_POINTS",
		"not enough available points",
		"",
	)

	ErrGiftNotFound = NewBaseError(
		http.StatusNotFound,
		"GIFT_NOT_FOUND",
		"gift not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
