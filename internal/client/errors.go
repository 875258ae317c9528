package client

import (
	"fmt"
	"net/http"

	"hackline/internal/common"
)

// APIError is a structured remote failure: the HTTP status and the message
// the service reported. It unwraps to one of the common sentinel errors so
// callers can match with errors.Is without inspecting status codes.
type APIError struct {
	Status  int
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote returned %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.kind }

func newAPIError(status int, message string) *APIError {
	kind := common.ErrRemote
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = common.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = common.ErrUnauthorized
	case http.StatusNotFound:
		kind = common.ErrNotFound
	case http.StatusConflict:
		kind = common.ErrUsernameTaken
	}
	return &APIError{Status: status, Message: message, kind: kind}
}
