package domain

// CampaignEffectiveStatuses lists every campaign lifecycle status the Meta API
// knows about. Insights queries filter on the full list so paused, archived
// and finished campaigns still show up in historical reports.
var CampaignEffectiveStatuses = []string{
	"ACTIVE",
	"PAUSED",
	"DELETED",
	"ARCHIVED",
	"IN_PROCESS",
	"WITH_ISSUES",
}

type Campaign struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective"`
}
