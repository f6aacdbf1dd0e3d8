package listing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// CacheTTL is how long cached entity lists stay fresh. Dashboard filters only
// need entity names/statuses, which change rarely.
const CacheTTL = 24 * time.Hour

// accountsScope tags account-level fetch errors; accounts have no owning
// scope of their own.
const accountsScope = "me"

type ListOptions struct {
	ForceRefresh bool
}

type AdAccountListResult struct {
	Accounts []*domain.AdAccount `json:"accounts"`
	Errors   []domain.FetchError `json:"errors,omitempty"`
}

type CampaignListResult struct {
	Campaigns []*domain.Campaign  `json:"campaigns"`
	Errors    []domain.FetchError `json:"errors,omitempty"`
}

type AdListResult struct {
	Ads    []*domain.Ad        `json:"ads"`
	Errors []domain.FetchError `json:"errors,omitempty"`
}

// EntityLister serves entity lists cache-aside: reads hit the local store,
// and stale or missing scopes are refreshed from the Meta API first. Remote
// failures during a refresh degrade to cached (possibly empty) data plus an
// entry in the result's Errors; storage failures propagate.
type EntityLister interface {
	ListAdAccounts(ctx context.Context, opts ListOptions) (*AdAccountListResult, error)
	ListCampaigns(ctx context.Context, accountIDs []string, opts ListOptions) (*CampaignListResult, error)
	ListAds(ctx context.Context, accountIDs []string, opts ListOptions) (*AdListResult, error)
}

type Service struct {
	accountRepo  repository.AdAccountRepository
	campaignRepo repository.CampaignRepository
	adRepo       repository.AdRepository
	meta         meta.Integrator

	now func() time.Time
}

func NewService(
	accountRepo repository.AdAccountRepository,
	campaignRepo repository.CampaignRepository,
	adRepo repository.AdRepository,
	metaService meta.Integrator,
) EntityLister {
	return &Service{
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		meta:         metaService,
		now:          time.Now,
	}
}

// remoteError marks a failure of the Meta API during an opportunistic
// refresh. These are absorbed into the result instead of failing the call.
type remoteError struct {
	err error
}

func (e *remoteError) Error() string { return e.err.Error() }
func (e *remoteError) Unwrap() error { return e.err }

func (s *Service) ListAdAccounts(ctx context.Context, opts ListOptions) (*AdAccountListResult, error) {
	result := &AdAccountListResult{Accounts: make([]*domain.AdAccount, 0)}

	refresh := opts.ForceRefresh
	if !refresh {
		stale, err := s.stale(s.accountRepo.OldestUpdatedAt)
		if err != nil {
			return nil, err
		}
		refresh = stale
	}

	if refresh {
		if err := s.fetchAndCacheAccounts(ctx); err != nil {
			var rerr *remoteError
			if !errors.As(err, &rerr) {
				return nil, err
			}

			log.ForContext(ctx).WithError(err).Error("listing: failed to refresh ad accounts, serving cached data")
			result.Errors = append(result.Errors, fetchError(accountsScope, "accounts.fetch", err))
		}
	}

	accounts, err := s.accountRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "listing cached ad accounts")
	}

	result.Accounts = accounts
	return result, nil
}

func (s *Service) ListCampaigns(ctx context.Context, accountIDs []string, opts ListOptions) (*CampaignListResult, error) {
	scopes := normalizeScopes(accountIDs)
	result := &CampaignListResult{Campaigns: make([]*domain.Campaign, 0)}

	refresh := opts.ForceRefresh
	if !refresh {
		stale, err := s.stale(func() (*time.Time, error) { return s.campaignRepo.OldestUpdatedAt(scopes) })
		if err != nil {
			return nil, err
		}
		refresh = stale
	}

	if refresh {
		for _, scope := range scopes {
			if err := s.fetchAndCacheCampaigns(ctx, scope); err != nil {
				var rerr *remoteError
				if !errors.As(err, &rerr) {
					return nil, err
				}

				log.ForContext(ctx).WithFields(log.Fields{
					"account_id": scope,
					"error":      err.Error(),
				}).Error("listing: failed to refresh campaigns, serving cached data")
				result.Errors = append(result.Errors, fetchError(scope, "campaigns.fetch", err))
			}
		}
	}

	campaigns, err := s.campaignRepo.List(scopes)
	if err != nil {
		return nil, errors.Wrap(err, "listing cached campaigns")
	}

	result.Campaigns = campaigns
	return result, nil
}

func (s *Service) ListAds(ctx context.Context, accountIDs []string, opts ListOptions) (*AdListResult, error) {
	scopes := normalizeScopes(accountIDs)
	result := &AdListResult{Ads: make([]*domain.Ad, 0)}

	refresh := opts.ForceRefresh
	if !refresh {
		stale, err := s.stale(func() (*time.Time, error) { return s.adRepo.OldestUpdatedAt(scopes) })
		if err != nil {
			return nil, err
		}
		refresh = stale
	}

	if refresh {
		for _, scope := range scopes {
			if err := s.fetchAndCacheAds(ctx, scope); err != nil {
				var rerr *remoteError
				if !errors.As(err, &rerr) {
					return nil, err
				}

				log.ForContext(ctx).WithFields(log.Fields{
					"account_id": scope,
					"error":      err.Error(),
				}).Error("listing: failed to refresh ads, serving cached data")
				result.Errors = append(result.Errors, fetchError(scope, "ads.fetch", err))
			}
		}
	}

	ads, err := s.adRepo.List(scopes)
	if err != nil {
		return nil, errors.Wrap(err, "listing cached ads")
	}

	result.Ads = ads
	return result, nil
}

// fetchAndCacheAccounts issues exactly one remote call and upserts the
// result. Concurrent callers may refresh the same scope twice; the upsert is
// idempotent, so the duplicate traffic is accepted instead of locking.
func (s *Service) fetchAndCacheAccounts(ctx context.Context) error {
	accounts, err := s.meta.FetchAdAccounts(ctx)
	if err != nil {
		return &remoteError{err: err}
	}

	if _, err := s.accountRepo.Upsert(accounts); err != nil {
		return errors.Wrap(err, "caching ad accounts")
	}

	return nil
}

func (s *Service) fetchAndCacheCampaigns(ctx context.Context, scope string) error {
	campaigns, err := s.meta.FetchCampaigns(ctx, scope)
	if err != nil {
		return &remoteError{err: err}
	}

	if _, err := s.campaignRepo.Upsert(scope, campaigns); err != nil {
		return errors.Wrap(err, "caching campaigns")
	}

	return nil
}

func (s *Service) fetchAndCacheAds(ctx context.Context, scope string) error {
	ads, err := s.meta.FetchAds(ctx, scope)
	if err != nil {
		return &remoteError{err: err}
	}

	if _, err := s.adRepo.Upsert(scope, ads); err != nil {
		return errors.Wrap(err, "caching ads")
	}

	return nil
}

// stale evaluates the staleness rule: no rows at all, or the oldest write in
// scope is CacheTTL or older.
func (s *Service) stale(oldestUpdatedAt func() (*time.Time, error)) (bool, error) {
	oldest, err := oldestUpdatedAt()
	if err != nil {
		return false, errors.Wrap(err, "reading cache staleness")
	}

	if oldest == nil {
		return true, nil
	}

	return s.now().Sub(*oldest) >= CacheTTL, nil
}

func fetchError(scope, operation string, err error) domain.FetchError {
	return domain.FetchError{
		Scope:       scope,
		Operation:   operation,
		Message:     err.Error(),
		RateLimited: metadomain.IsRateLimitError(err),
	}
}

func normalizeScopes(accountIDs []string) []string {
	scopes := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		scopes = append(scopes, domain.NormalizeAccountID(id))
	}
	return scopes
}
