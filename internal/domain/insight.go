package domain

import "time"

// InsightsRequest is the logical insights query built by callers and turned
// into wire parameters by the meta client's query builder.
type InsightsRequest struct {
	AccountID     string
	StartDate     time.Time
	EndDate       time.Time
	Breakdowns    []string
	Fields        []string
	TimeIncrement int // days per bucket, 0 means a single aggregate bucket

	// Entity filters. When the "all" flag is set the corresponding id list
	// is ignored and no id predicate is sent to the API.
	CampaignIDs  []string
	AllCampaigns bool
	AdIDs        []string
	AllAds       bool
}

// InsightRow is one raw row of an insights response after boundary
// normalization. Metric fields keep the API's string encoding; parsing
// happens during aggregation so malformed values degrade to zero there.
type InsightRow struct {
	Age         string
	Gender      string
	Country     string
	Region      string
	DateStart   string
	DateStop    string
	Impressions string
	Reach       string
	Clicks      string
	Spend       string
}
