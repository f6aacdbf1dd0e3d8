package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

const (
	CronJobTypeEntitySync = "entity-sync"
)

// CronJobServices groups the schedulers exposed through the cron endpoints.
type CronJobServices struct {
	EntitySyncService *scheduler.EntitySyncService
}

// RunCronJob manually triggers a scheduled job.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeEntitySync:
			if services.EntitySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Entity sync service not available", nil)
				return
			}
			services.EntitySyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Unknown cron job type. Accepted values: entity-sync", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job triggered manually")

		writeJSON(w, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus reports the state of every scheduled job.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)

		if services.EntitySyncService != nil {
			status[CronJobTypeEntitySync] = services.EntitySyncService.GetStatus()
		}

		writeJSON(w, status)
	}
}
