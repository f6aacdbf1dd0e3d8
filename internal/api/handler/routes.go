package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/listing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func AdAccounts(service listing.EntityLister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
	}
}

func Entities(service listing.EntityLister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignList(service),
		},
		{
			Path:    "/v1/adAccount/:id/ads",
			Method:  http.MethodGet,
			Handler: AdList(service),
		},
	}
}

func Demographics(service insighting.Demographer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccount/:id/demographics",
			Method:  http.MethodGet,
			Handler: GetDemographics(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
