// Package dto defines the request and response shapes of the HTTP API.
package dto

// ErrorResponse is the uniform error body. Code carries the machine-readable
// domain error code when one exists.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse is the body for operations with nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}
