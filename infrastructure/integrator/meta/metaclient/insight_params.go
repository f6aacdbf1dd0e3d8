package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// defaultPageLimit keeps list and insights pages large enough that the
// dashboard's queries fit a single page in practice.
const defaultPageLimit = "500"

var defaultInsightFields = []string{
	"impressions",
	"reach",
	"clicks",
	"spend",
}

// filterClause is one entry of the Graph API "filtering" parameter.
type filterClause struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// BuildInsightsParams translates a logical insights request into the wire
// parameter set. It is a pure function with no side effects.
//
// The filtering parameter always includes IN predicates over every campaign
// and ad lifecycle status, so paused or archived entities still contribute to
// historical reports. Explicit campaign/ad id predicates are only added when
// the caller did not select "all"; sending the full id list in that case
// would be redundant and potentially enormous.
func BuildInsightsParams(req *domain.InsightsRequest) url.Values {
	params := url.Values{}

	fields := req.Fields
	if len(fields) == 0 {
		fields = defaultInsightFields
	}
	params.Set("fields", strings.Join(fields, ","))

	if len(req.Breakdowns) > 0 {
		params.Set("breakdowns", strings.Join(req.Breakdowns, ","))
	}

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		req.StartDate.Format(time.DateOnly),
		req.EndDate.Format(time.DateOnly),
	)
	params.Set("time_range", timeRange)

	if req.TimeIncrement > 0 {
		params.Set("time_increment", strconv.Itoa(req.TimeIncrement))
	}

	if filtering := buildFiltering(req); len(filtering) > 0 {
		encoded, err := json.Marshal(filtering)
		if err == nil {
			params.Set("filtering", string(encoded))
		}
	}

	params.Set("limit", defaultPageLimit)

	return params
}

func buildFiltering(req *domain.InsightsRequest) []filterClause {
	filtering := []filterClause{
		{
			Field:    "campaign.effective_status",
			Operator: "IN",
			Value:    domain.CampaignEffectiveStatuses,
		},
		{
			Field:    "ad.effective_status",
			Operator: "IN",
			Value:    domain.AdEffectiveStatuses,
		},
	}

	if !req.AllCampaigns && len(req.CampaignIDs) > 0 {
		filtering = append(filtering, filterClause{
			Field:    "campaign.id",
			Operator: "IN",
			Value:    req.CampaignIDs,
		})
	}

	if !req.AllAds && len(req.AdIDs) > 0 {
		filtering = append(filtering, filterClause{
			Field:    "ad.id",
			Operator: "IN",
			Value:    req.AdIDs,
		})
	}

	return filtering
}
