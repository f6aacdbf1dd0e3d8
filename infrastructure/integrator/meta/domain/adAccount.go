package metadomain

// AdAccount is the wire shape of an ad account. Depending on the endpoint the
// API fills either ID ("act_"-prefixed) or AccountID (bare), and either Name
// or AccountName; the integrator normalizes both pairs.
type AdAccount struct {
	ID           string `json:"id"`
	AccountID    string `json:"account_id"`
	Name         string `json:"name"`
	AccountName  string `json:"account_name"`
	Status       int    `json:"account_status"`
	Currency     string `json:"currency"`
	TimezoneName string `json:"timezone_name"`
}

// ExternalID returns whichever identifier field the API populated.
func (a *AdAccount) ExternalID() string {
	if a.AccountID != "" {
		return a.AccountID
	}
	return a.ID
}

// DisplayName returns whichever name field the API populated.
func (a *AdAccount) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.AccountName
}
