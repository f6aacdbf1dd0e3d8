package metaclient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func baseRequest() *domain.InsightsRequest {
	return &domain.InsightsRequest{
		AccountID: "act_123",
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
	}
}

func decodeFiltering(t *testing.T, raw string) []map[string]interface{} {
	t.Helper()

	var filtering []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &filtering))
	return filtering
}

func TestBuildInsightsParams_TimeRange(t *testing.T) {
	params := BuildInsightsParams(baseRequest())

	assert.Equal(t, `{"since":"2024-05-01","until":"2024-05-31"}`, params.Get("time_range"))
}

func TestBuildInsightsParams_StatusFiltersAlwaysPresent(t *testing.T) {
	req := baseRequest()
	req.AllCampaigns = true
	req.AllAds = true

	params := BuildInsightsParams(req)
	filtering := decodeFiltering(t, params.Get("filtering"))

	require.Len(t, filtering, 2)
	assert.Equal(t, "campaign.effective_status", filtering[0]["field"])
	assert.Equal(t, "IN", filtering[0]["operator"])
	assert.Equal(t, "ad.effective_status", filtering[1]["field"])

	statuses, ok := filtering[0]["value"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, statuses, "PAUSED")
	assert.Contains(t, statuses, "ARCHIVED")
}

func TestBuildInsightsParams_ExplicitIDsOnlyWhenNotAll(t *testing.T) {
	req := baseRequest()
	req.CampaignIDs = []string{"c1", "c2"}
	req.AdIDs = []string{"a1"}

	params := BuildInsightsParams(req)
	filtering := decodeFiltering(t, params.Get("filtering"))

	require.Len(t, filtering, 4)
	assert.Equal(t, "campaign.id", filtering[2]["field"])
	assert.Equal(t, "ad.id", filtering[3]["field"])
}

func TestBuildInsightsParams_AllFlagSuppressesIDFilter(t *testing.T) {
	req := baseRequest()
	req.CampaignIDs = []string{"c1", "c2"}
	req.AllCampaigns = true
	req.AdIDs = []string{"a1"}
	req.AllAds = true

	params := BuildInsightsParams(req)
	filtering := decodeFiltering(t, params.Get("filtering"))

	require.Len(t, filtering, 2)
	for _, clause := range filtering {
		assert.NotEqual(t, "campaign.id", clause["field"])
		assert.NotEqual(t, "ad.id", clause["field"])
	}
}

func TestBuildInsightsParams_EmptyBreakdownsOmitted(t *testing.T) {
	params := BuildInsightsParams(baseRequest())

	assert.False(t, params.Has("breakdowns"))
	assert.False(t, params.Has("time_increment"))
}

func TestBuildInsightsParams_BreakdownsAndIncrement(t *testing.T) {
	req := baseRequest()
	req.Breakdowns = []string{"age", "gender"}
	req.TimeIncrement = 1

	params := BuildInsightsParams(req)

	assert.Equal(t, "age,gender", params.Get("breakdowns"))
	assert.Equal(t, "1", params.Get("time_increment"))
}

func TestBuildInsightsParams_DefaultFields(t *testing.T) {
	params := BuildInsightsParams(baseRequest())

	assert.Equal(t, "impressions,reach,clicks,spend", params.Get("fields"))

	req := baseRequest()
	req.Fields = []string{"impressions"}
	assert.Equal(t, "impressions", BuildInsightsParams(req).Get("fields"))
}
