package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// GetDemographics serves the demographic breakdown report for one account.
// Required query params: start_date, end_date (YYYY-MM-DD). Optional:
// breakdowns (comma separated), campaign_ids/all_campaigns, ad_ids/all_ads.
func GetDemographics(service insighting.Demographer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		query := r.URL.Query()

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid start_date, expected YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid end_date, expected YYYY-MM-DD", nil)
			return
		}

		if startDate.IsZero() || endDate.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date and end_date are required", nil)
			return
		}

		if endDate.Before(startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date must not precede start_date", nil)
			return
		}

		allCampaigns, _ := strconv.ParseBool(query.Get("all_campaigns"))
		allAds, _ := strconv.ParseBool(query.Get("all_ads"))

		demographicsQuery := &domain.DemographicsQuery{
			AccountID:    accountID,
			StartDate:    startDate,
			EndDate:      endDate,
			Breakdowns:   splitParam(query.Get("breakdowns")),
			CampaignIDs:  splitParam(query.Get("campaign_ids")),
			AllCampaigns: allCampaigns,
			AdIDs:        splitParam(query.Get("ad_ids")),
			AllAds:       allAds,
		}

		response, err := service.FetchDemographics(r.Context(), demographicsQuery)
		if err != nil {
			logrus.Error("Error fetching demographics: ", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to fetch demographics", nil)
			return
		}

		writeJSON(w, response)
	})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
