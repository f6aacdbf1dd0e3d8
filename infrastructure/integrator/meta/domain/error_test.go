package metadomain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_IsRateLimited(t *testing.T) {
	tests := []struct {
		name     string
		detail   ErrorDetails
		expected bool
	}{
		{name: "app level code", detail: ErrorDetails{Code: 4}, expected: true},
		{name: "user level code", detail: ErrorDetails{Code: 17}, expected: true},
		{name: "page level code", detail: ErrorDetails{Code: 32}, expected: true},
		{name: "custom level code", detail: ErrorDetails{Code: 613}, expected: true},
		{name: "business subcode", detail: ErrorDetails{Code: 100, ErrorSubcode: 80004}, expected: true},
		{name: "message sniffing", detail: ErrorDetails{Code: 100, Message: "(#80000) There have been too many calls"}, expected: true},
		{name: "unrelated error", detail: ErrorDetails{Code: 100, Message: "Unsupported get request"}, expected: false},
		{name: "expired token", detail: ErrorDetails{Code: 190, Type: "OAuthException"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &ErrorResponse{Detail: tt.detail}
			assert.Equal(t, tt.expected, e.IsRateLimited())
		})
	}
}

func TestIsRateLimitError_Wrapped(t *testing.T) {
	apiErr := &ErrorResponse{Detail: ErrorDetails{Code: 17}}
	wrapped := errors.Wrap(apiErr, "fetching campaigns")

	assert.True(t, IsRateLimitError(wrapped))
	assert.False(t, IsRateLimitError(errors.New("connection refused")))
	assert.False(t, IsRateLimitError(nil))
}
