package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/listing"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func AdAccountList(service listing.EntityLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.ListAdAccounts(r.Context(), listOptions(r))
		if err != nil {
			logrus.Error("Error listing accounts: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list ad accounts", nil)
			return
		}

		writeJSON(w, result)
	})
}

func CampaignList(service listing.EntityLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		result, err := service.ListCampaigns(r.Context(), []string{accountID}, listOptions(r))
		if err != nil {
			logrus.Error("Error listing campaigns: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list campaigns", nil)
			return
		}

		writeJSON(w, result)
	})
}

func AdList(service listing.EntityLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		result, err := service.ListAds(r.Context(), []string{accountID}, listOptions(r))
		if err != nil {
			logrus.Error("Error listing ads: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list ads", nil)
			return
		}

		writeJSON(w, result)
	})
}

func listOptions(r *http.Request) listing.ListOptions {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force_refresh"))
	return listing.ListOptions{ForceRefresh: force}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
	}
}
