package domain

import "time"

// DemographicsQuery is the caller-facing demographic report query.
type DemographicsQuery struct {
	AccountID  string
	StartDate  time.Time
	EndDate    time.Time
	Breakdowns []string

	CampaignIDs  []string
	AllCampaigns bool
	AdIDs        []string
	AllAds       bool
}

// DemographicRow is one aggregated row of a demographic breakdown. Only the
// dimensions that were requested are populated.
type DemographicRow struct {
	Age     string `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`

	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
}

// DemographicSeriesRow is one day of the age/gender time series.
type DemographicSeriesRow struct {
	Date   string `json:"date"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`

	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
}

// FetchError reports a remote failure that was absorbed instead of failing
// the whole request.
type FetchError struct {
	Scope       string `json:"scope"`
	Operation   string `json:"operation"`
	Message     string `json:"message"`
	RateLimited bool   `json:"rate_limited"`
}

// DemographicsResponse is the merged result of the demographic fan-out. A
// branch that failed contributes an empty slice and an entry in Errors.
type DemographicsResponse struct {
	AgeGender       []DemographicRow       `json:"age_gender"`
	Country         []DemographicRow       `json:"country"`
	Region          []DemographicRow       `json:"region"`
	AgeGenderSeries []DemographicSeriesRow `json:"age_gender_series"`

	SkippedBreakdowns []string     `json:"skipped_breakdowns,omitempty"`
	Errors            []FetchError `json:"errors,omitempty"`
}
