package api

import (
	"errors"
	"fmt"
)

// Notices shown for transport-classified failures. Wording matches the
// hosted application.
const (
	NoticeSessionExpired = "Session expired. Please login again."
	NoticeForbidden      = "You don't have permission to perform this action."
	NoticeNotFound       = "Resource not found."
	NoticeServerError    = "Server error. Please try again later."
	NoticeGenericError   = "An error occurred. Please try again."
	NoticeNetworkError   = "Network error. Please check your connection."
	NoticeUnexpected     = "An unexpected error occurred."
)

// ErrSessionExpired marks a 401 after the stored token was cleared.
var ErrSessionExpired = errors.New("session expired")

// Error is the failure of a single API call. Status is zero when no
// response was received.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	if e.Err != nil {
		return "api: " + e.Err.Error()
	}
	return "api: request failed"
}

func (e *Error) Unwrap() error { return e.Err }

// StatusOf returns the HTTP status carried by err, or zero for transport
// and construction failures.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// errorBody is the JSON error envelope returned by the API server.
type errorBody struct {
	Message string `json:"message"`
}
