package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalName is returned when the goal name length is out of range.
	ErrInvalidGoalName = errors.New("name must be between 3 and 100 characters")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidCurrentAmount is returned when the current saved amount is negative.
	ErrInvalidCurrentAmount = errors.New("current amount cannot be negative")

	// ErrInvalidPriority is returned when the priority is outside 1..10.
	ErrInvalidPriority = errors.New("priority must be between 1 and 10")

	// ErrInvalidGoalStatus is returned when the status is not a known value.
	ErrInvalidGoalStatus = errors.New("status must be: active, completed, or cancelled")

	// ErrGoalNotReached is returned when completing a goal whose saved amount is below target.
	ErrGoalNotReached = errors.New("goal can only be completed when the current amount reaches the target")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalName        GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeInvalidCurrentAmount   GoalErrorCode = "GOL-010004"
	ErrCodeInvalidPriority        GoalErrorCode = "GOL-010005"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010006"
	ErrCodeInvalidGoalStatus      GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010008"
	ErrCodeGoalNotReached         GoalErrorCode = "GOL-010009"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError is the coded error returned for goal failures.
type GoalError = CodedError[GoalErrorCode]

// NewGoalError creates a new GoalError.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{Code: code, Message: message, Err: err}
}
