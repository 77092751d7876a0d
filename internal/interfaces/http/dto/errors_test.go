package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"ACCOUNT_DISABLED", http.StatusForbidden},
		{"NOT_FOUND", http.StatusNotFound},
		{"VALIDATION_ERROR", http.StatusBadRequest},
		{"TEMPLATE_MISSING", http.StatusServiceUnavailable},
		{"SOMETHING_NOBODY_MAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponses(t *testing.T) {
	success := NewSuccessResponse("payload")
	assert.True(t, success.Success)
	assert.Nil(t, success.Error)

	failure := NewErrorResponse("NOT_FOUND", "missing")
	assert.False(t, failure.Success)
	assert.Equal(t, "NOT_FOUND", failure.Error.Code)
}
