package domain

import "strings"

// accountIDPrefix is the marker the Meta API prepends to ad account IDs in
// URLs and some response payloads. IDs are stored and compared without it.
const accountIDPrefix = "act_"

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusDisabled AdAccountStatus = "DISABLED"
	AdAccountStatusUnknown  AdAccountStatus = "UNKNOWN"
)

// AdAccount is the canonical ad account shape used across the application.
// ID is always normalized (no "act_" prefix).
type AdAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Status   AdAccountStatus `json:"status"`
	Currency string          `json:"currency"`
	Timezone string          `json:"timezone"`
}

// NormalizeAccountID strips the "act_" prefix so lookups are prefix-insensitive.
func NormalizeAccountID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), accountIDPrefix)
}
