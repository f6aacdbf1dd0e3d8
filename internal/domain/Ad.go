package domain

// AdEffectiveStatuses lists every ad lifecycle status the Meta API knows
// about, used the same way as CampaignEffectiveStatuses.
var AdEffectiveStatuses = []string{
	"ACTIVE",
	"PAUSED",
	"DELETED",
	"PENDING_REVIEW",
	"DISAPPROVED",
	"PREAPPROVED",
	"PENDING_BILLING_INFO",
	"CAMPAIGN_PAUSED",
	"ADSET_PAUSED",
	"ARCHIVED",
	"IN_PROCESS",
	"WITH_ISSUES",
}

type Ad struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}
