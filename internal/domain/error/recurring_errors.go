package error

import "errors"

// Recurring entry domain errors.
var (
	// ErrRecurringEntryNotFound is returned when a recurring entry is not found.
	ErrRecurringEntryNotFound = errors.New("recurring entry not found")

	// ErrInvalidInstallmentCount is returned when the total installment count is out of range.
	ErrInvalidInstallmentCount = errors.New("total installments must be between 1 and 360")

	// ErrInvalidProgress is returned when the generated counter is negative or exceeds the total.
	ErrInvalidProgress = errors.New("generated installments must be between 0 and total installments")

	// ErrRecurringEntryInactive is returned when cancelling a recurring entry that is no longer active.
	ErrRecurringEntryInactive = errors.New("recurring entry is not active")

	// ErrUnauthorizedRecurringAccess is returned when a user accesses another user's recurring entry.
	ErrUnauthorizedRecurringAccess = errors.New("unauthorized access to recurring entry")
)

// RecurringErrorCode defines error codes for recurring entry errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecurringEntryNotFound      RecurringErrorCode = "REC-010001"
	ErrCodeInvalidInstallmentCount     RecurringErrorCode = "REC-010002"
	ErrCodeInvalidRecurringAmount      RecurringErrorCode = "REC-010003"
	ErrCodeInvalidRecurringKind        RecurringErrorCode = "REC-010004"
	ErrCodeInvalidRecurringDescription RecurringErrorCode = "REC-010005"
	ErrCodeInvalidProgress             RecurringErrorCode = "REC-010006"
	ErrCodeRecurringEntryInactive      RecurringErrorCode = "REC-010007"
	ErrCodeUnauthorizedRecurringAccess RecurringErrorCode = "REC-010008"
	ErrCodeMissingRecurringFields      RecurringErrorCode = "REC-010009"

	// Materialization errors (02XXXX)
	ErrCodeInstallmentInsertFailed RecurringErrorCode = "REC-020001"
	ErrCodeProgressUpdateFailed    RecurringErrorCode = "REC-020002"
	ErrCodeInstallmentLookupFailed RecurringErrorCode = "REC-020003"
	ErrCodeLockFailed              RecurringErrorCode = "REC-020004"

	// Internal errors (99XXXX)
	ErrCodeRecurringInternalError RecurringErrorCode = "REC-990001"
)

// RecurringError is the coded error returned for recurring failures.
type RecurringError = CodedError[RecurringErrorCode]

// NewRecurringError creates a new RecurringError.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{Code: code, Message: message, Err: err}
}
