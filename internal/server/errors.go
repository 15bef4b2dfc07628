package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/format-analyzer/internal/formats"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidBody indicates a body that is not valid JSON for the endpoint.
type ErrInvalidBody struct {
	Cause error
}

func (e *ErrInvalidBody) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrInvalidBody) Unwrap() error {
	return e.Cause
}

// ErrBodyTooLarge indicates a body over the request size limit.
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		bodyErr       *ErrInvalidBody
		tooLargeErr   *ErrBodyTooLarge
		unknownErr    *formats.UnknownFormatError
	)
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &bodyErr):
		return http.StatusBadRequest
	case errors.As(err, &unknownErr):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
