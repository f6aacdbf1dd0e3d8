package metadomain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorResponse is the Meta API error envelope. It implements error so remote
// failures keep their code/subcode through the call chain.
type ErrorResponse struct {
	Detail ErrorDetails `json:"error"`
}

// ErrorDetails carries the Graph API error fields.
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

func (e *ErrorResponse) Error() string {
	if e.Detail.ErrorSubcode != 0 {
		return fmt.Sprintf("meta api error %d (subcode %d): %s", e.Detail.Code, e.Detail.ErrorSubcode, e.Detail.Message)
	}
	return fmt.Sprintf("meta api error %d: %s", e.Detail.Code, e.Detail.Message)
}

// Rate limit codes documented for the Graph API: 4 (app level), 17 (user
// level), 32 (page level), 613 (custom level). Subcodes cover the business
// use-case throttles.
var rateLimitCodes = map[int]struct{}{
	4:   {},
	17:  {},
	32:  {},
	613: {},
}

var rateLimitSubcodes = map[int]struct{}{
	80000:   {},
	80003:   {},
	80004:   {},
	2446079: {},
}

// IsRateLimited reports whether the error represents API throttling.
func (e *ErrorResponse) IsRateLimited() bool {
	if _, ok := rateLimitCodes[e.Detail.Code]; ok {
		return true
	}
	if _, ok := rateLimitSubcodes[e.Detail.ErrorSubcode]; ok {
		return true
	}

	msg := strings.ToLower(e.Detail.Message)
	return strings.Contains(msg, "too many calls") || strings.Contains(msg, "request limit reached")
}

// IsRateLimitError reports whether err (anywhere in its chain) is a Meta
// rate-limit error.
func IsRateLimitError(err error) bool {
	var apiErr *ErrorResponse
	if errors.As(err, &apiErr) {
		return apiErr.IsRateLimited()
	}
	return false
}
