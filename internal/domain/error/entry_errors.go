package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryAmount is returned when the amount is below the minimum of 0.01.
	ErrInvalidEntryAmount = errors.New("amount must be at least 0.01")

	// ErrInvalidEntryKind is returned when the kind is neither income nor expense.
	ErrInvalidEntryKind = errors.New("kind must be: income or expense")

	// ErrInvalidEntryDescription is returned when the description length is out of range.
	ErrInvalidEntryDescription = errors.New("description must be between 3 and 200 characters")

	// ErrInvalidEntryCategory is returned when the category is empty.
	ErrInvalidEntryCategory = errors.New("category is required")

	// ErrUnauthorizedEntryAccess is returned when a user accesses another user's entry.
	ErrUnauthorizedEntryAccess = errors.New("unauthorized access to entry")

	// ErrDuplicateInstallment is returned by the store when an installment already
	// exists for the same recurring entry and date.
	ErrDuplicateInstallment = errors.New("installment already exists for this date")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryNotFound           EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryAmount      EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryKind        EntryErrorCode = "ENT-010003"
	ErrCodeInvalidEntryDescription EntryErrorCode = "ENT-010004"
	ErrCodeInvalidEntryCategory    EntryErrorCode = "ENT-010005"
	ErrCodeInvalidEntryDate        EntryErrorCode = "ENT-010006"
	ErrCodeUnauthorizedEntryAccess EntryErrorCode = "ENT-010007"
	ErrCodeMissingEntryFields      EntryErrorCode = "ENT-010008"

	// Internal errors (99XXXX)
	ErrCodeEntryInternalError EntryErrorCode = "ENT-990001"
)

// EntryError is the coded error returned for entry failures.
type EntryError = CodedError[EntryErrorCode]

// NewEntryError creates a new EntryError.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{Code: code, Message: message, Err: err}
}
