package domain

import (
	"errors"
	"fmt"
)

// APIError is a failed exchange with the remote API. Status is 0 when the
// request never produced a response.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

// StatusMessage is the fallback text used when a failure body is unreadable.
func StatusMessage(status int) string {
	return fmt.Sprintf("Request failed with status %d", status)
}

// ValidationError is raised locally before any request is sent.
type ValidationError struct {
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// Invalidf builds a ValidationError.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// MessageOf returns the text shown to the user for err. API and validation
// failures surface their own message, anything else its Error string.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
