package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidYear is returned when the analytics year is out of range.
	ErrInvalidYear = errors.New("year must be between 1900 and 9999")

	// ErrInvalidAggregateInput is returned when a record handed to the aggregator
	// carries a negative amount or an unknown kind.
	ErrInvalidAggregateInput = errors.New("invalid record in aggregation input")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateFormat     DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidYear           DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidAggregateInput DashboardErrorCode = "DSH-010003"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError is the coded error returned for dashboard failures.
type DashboardError = CodedError[DashboardErrorCode]

// NewDashboardError creates a new DashboardError.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{Code: code, Message: message, Err: err}
}
