package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/format-analyzer/internal/formats"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "format", Message: "required"}
	assert.Equal(t, "validation error: format - required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrInvalidBody(t *testing.T) {
	err := &ErrInvalidBody{Cause: assert.AnError}
	assert.Contains(t, err.Error(), "invalid request body")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestErrBodyTooLarge(t *testing.T) {
	err := &ErrBodyTooLarge{Limit: 1024}
	assert.Equal(t, "request body exceeds 1024 bytes", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "documents", Message: "min"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrInvalidBody",
			err:      &ErrInvalidBody{Cause: assert.AnError},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrBodyTooLarge",
			err:      &ErrBodyTooLarge{Limit: 10},
			expected: http.StatusRequestEntityTooLarge,
		},
		{
			name:     "UnknownFormatError",
			err:      &formats.UnknownFormatError{Slug: "poem"},
			expected: http.StatusNotFound,
		},
		{
			name:     "Wrapped UnknownFormatError",
			err:      fmt.Errorf("weights: %w", &formats.UnknownFormatError{Slug: "poem"}),
			expected: http.StatusNotFound,
		},
		{
			name:     "Canceled",
			err:      fmt.Errorf("batch: %w", context.Canceled),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
