// Package error holds the sentinel errors of the domain and the coded errors
// the HTTP layer turns into responses.
package error

// CodedError pairs a stable code such as "GOL-010001" with a message for
// clients. Err keeps the sentinel so callers can still use errors.Is.
type CodedError[C ~string] struct {
	Code    C
	Message string
	Err     error
}

func (e *CodedError[C]) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *CodedError[C]) Unwrap() error {
	return e.Err
}

// Coded returns the code and the client facing message.
func (e *CodedError[C]) Coded() (code, message string) {
	return string(e.Code), e.Message
}
