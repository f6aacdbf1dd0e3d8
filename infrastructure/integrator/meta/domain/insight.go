package metadomain

// InsightRow is one row of an insights response. Metric values come back as
// strings from the Graph API.
type InsightRow struct {
	Age       string `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Country   string `json:"country,omitempty"`
	Region    string `json:"region,omitempty"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`

	Impressions string `json:"impressions"`
	Reach       string `json:"reach"`
	Clicks      string `json:"clicks"`
	Spend       string `json:"spend"`
}
