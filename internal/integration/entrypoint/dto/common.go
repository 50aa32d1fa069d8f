// Package dto defines data transfer objects for API requests and responses.
//
// Monetary amounts are decimal strings in responses and accept either JSON
// numbers or strings in requests. Dates use the YYYY-MM-DD layout.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
