package meta

import (
	"context"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/scheduler"
)

// Integrator is the application-facing surface of the Meta integration. Every
// method issues exactly one remote call through the shared request scheduler
// and returns canonical domain entities.
type Integrator interface {
	FetchAdAccounts(ctx context.Context) ([]*domain.AdAccount, error)
	FetchCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error)
	FetchAds(ctx context.Context, accountID string) ([]*domain.Ad, error)
	FetchInsights(ctx context.Context, req *domain.InsightsRequest) ([]*domain.InsightRow, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	sched  *scheduler.Scheduler
}

func New(cfg *config.Config, client metaclient.Client, sched *scheduler.Scheduler) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		sched:  sched,
	}
}

func (s *MetaIntegrator) FetchAdAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	var raw []metadomain.AdAccount

	err := s.sched.Schedule(ctx, func() error {
		var err error
		raw, err = s.Client.GetAdAccounts()
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("meta: failed to fetch ad accounts")
		return nil, err
	}

	accounts := make([]*domain.AdAccount, 0, len(raw))
	for i := range raw {
		accounts = append(accounts, factoryAdAccount(&raw[i]))
	}

	log.ForContext(ctx).WithField("total_accounts", len(accounts)).Debug("meta: fetched ad accounts")

	return accounts, nil
}

func (s *MetaIntegrator) FetchCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	scope := domain.NormalizeAccountID(accountID)

	var raw []metadomain.Campaign

	err := s.sched.Schedule(ctx, func() error {
		var err error
		raw, err = s.Client.GetCampaignsByAccountID(scope)
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id": scope,
			"error":      err.Error(),
		}).Error("meta: failed to fetch campaigns")
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(raw))
	for _, c := range raw {
		campaigns = append(campaigns, &domain.Campaign{
			ID:        c.ID,
			AccountID: scope,
			Name:      c.Name,
			Status:    c.Status,
			Objective: c.Objective,
		})
	}

	return campaigns, nil
}

func (s *MetaIntegrator) FetchAds(ctx context.Context, accountID string) ([]*domain.Ad, error) {
	scope := domain.NormalizeAccountID(accountID)

	var raw []metadomain.Ad

	err := s.sched.Schedule(ctx, func() error {
		var err error
		raw, err = s.Client.GetAdsByAccountID(scope)
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id": scope,
			"error":      err.Error(),
		}).Error("meta: failed to fetch ads")
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(raw))
	for _, a := range raw {
		ads = append(ads, &domain.Ad{
			ID:         a.ID,
			AccountID:  scope,
			CampaignID: a.Campaign.ID,
			Name:       a.Name,
			Status:     a.Status,
		})
	}

	return ads, nil
}

func (s *MetaIntegrator) FetchInsights(ctx context.Context, req *domain.InsightsRequest) ([]*domain.InsightRow, error) {
	var raw []metadomain.InsightRow

	err := s.sched.Schedule(ctx, func() error {
		var err error
		raw, err = s.Client.GetInsights(req)
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id": domain.NormalizeAccountID(req.AccountID),
			"breakdowns": req.Breakdowns,
			"error":      err.Error(),
		}).Error("meta: failed to fetch insights")
		return nil, err
	}

	rows := make([]*domain.InsightRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, &domain.InsightRow{
			Age:         r.Age,
			Gender:      r.Gender,
			Country:     r.Country,
			Region:      r.Region,
			DateStart:   r.DateStart,
			DateStop:    r.DateStop,
			Impressions: r.Impressions,
			Reach:       r.Reach,
			Clicks:      r.Clicks,
			Spend:       r.Spend,
		})
	}

	return rows, nil
}

// factoryAdAccount normalizes the duck-typed wire shape (account_id vs id,
// name vs account_name) into the canonical entity.
func factoryAdAccount(raw *metadomain.AdAccount) *domain.AdAccount {
	return &domain.AdAccount{
		ID:       domain.NormalizeAccountID(raw.ExternalID()),
		Name:     raw.DisplayName(),
		Status:   accountStatus(raw.Status),
		Currency: raw.Currency,
		Timezone: raw.TimezoneName,
	}
}

// accountStatus maps the API's numeric account_status to the domain enum.
// 1 is active; 2 and 3 are the disabled/unsettled states.
func accountStatus(status int) domain.AdAccountStatus {
	switch status {
	case 1:
		return domain.AdAccountStatusActive
	case 2, 3:
		return domain.AdAccountStatusDisabled
	default:
		return domain.AdAccountStatusUnknown
	}
}
