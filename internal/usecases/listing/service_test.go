package listing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	accountRepo  *repomocks.MockAdAccountRepository
	campaignRepo *repomocks.MockCampaignRepository
	adRepo       *repomocks.MockAdRepository
	meta         *metamocks.MockIntegrator
}

func newTestService(t *testing.T, now time.Time) (*Service, serviceMocks) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		accountRepo:  repomocks.NewMockAdAccountRepository(ctrl),
		campaignRepo: repomocks.NewMockCampaignRepository(ctrl),
		adRepo:       repomocks.NewMockAdRepository(ctrl),
		meta:         metamocks.NewMockIntegrator(ctrl),
	}

	svc := &Service{
		accountRepo:  m.accountRepo,
		campaignRepo: m.campaignRepo,
		adRepo:       m.adRepo,
		meta:         m.meta,
		now:          func() time.Time { return now },
	}

	return svc, m
}

func timePtr(t time.Time) *time.Time { return &t }

func rateLimitErr() error {
	return &metadomain.ErrorResponse{
		Detail: metadomain.ErrorDetails{
			Message: "User request limit reached",
			Code:    17,
		},
	}
}

func TestListAdAccountsFreshCacheSkipsRemote(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	cached := []*domain.AdAccount{{ID: "123", Name: "Acme"}}

	m.accountRepo.EXPECT().OldestUpdatedAt().Return(timePtr(now.Add(-time.Hour)), nil)
	m.accountRepo.EXPECT().List().Return(cached, nil)

	result, err := svc.ListAdAccounts(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, cached, result.Accounts)
	assert.Empty(t, result.Errors)
}

func TestListAdAccountsEmptyCacheRefreshes(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	fetched := []*domain.AdAccount{{ID: "123", Name: "Acme"}}

	m.accountRepo.EXPECT().OldestUpdatedAt().Return(nil, nil)
	m.meta.EXPECT().FetchAdAccounts(gomock.Any()).Return(fetched, nil)
	m.accountRepo.EXPECT().Upsert(fetched).Return(1, nil)
	m.accountRepo.EXPECT().List().Return(fetched, nil)

	result, err := svc.ListAdAccounts(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, fetched, result.Accounts)
	assert.Empty(t, result.Errors)
}

func TestListAdAccountsRemoteFailureServesCache(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	m.accountRepo.EXPECT().OldestUpdatedAt().Return(nil, nil)
	m.meta.EXPECT().FetchAdAccounts(gomock.Any()).Return(nil, rateLimitErr())
	m.accountRepo.EXPECT().List().Return([]*domain.AdAccount{}, nil)

	result, err := svc.ListAdAccounts(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Accounts)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "accounts.fetch", result.Errors[0].Operation)
	assert.True(t, result.Errors[0].RateLimited)
}

func TestListAdAccountsStorageErrorPropagates(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	fetched := []*domain.AdAccount{{ID: "123"}}

	m.accountRepo.EXPECT().OldestUpdatedAt().Return(nil, nil)
	m.meta.EXPECT().FetchAdAccounts(gomock.Any()).Return(fetched, nil)
	m.accountRepo.EXPECT().Upsert(fetched).Return(0, errors.New("connection reset"))

	result, err := svc.ListAdAccounts(context.Background(), ListOptions{})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestListCampaignsStaleAtExactTTL(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	scopes := []string{"123"}
	fetched := []*domain.Campaign{{ID: "c1", AccountID: "123", Name: "Launch"}}

	m.campaignRepo.EXPECT().OldestUpdatedAt(scopes).Return(timePtr(now.Add(-CacheTTL)), nil)
	m.meta.EXPECT().FetchCampaigns(gomock.Any(), "123").Return(fetched, nil)
	m.campaignRepo.EXPECT().Upsert("123", fetched).Return(1, nil)
	m.campaignRepo.EXPECT().List(scopes).Return(fetched, nil)

	result, err := svc.ListCampaigns(context.Background(), []string{"act_123"}, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, fetched, result.Campaigns)
}

func TestListCampaignsJustUnderTTLStaysFresh(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	scopes := []string{"123"}
	cached := []*domain.Campaign{{ID: "c1", AccountID: "123"}}

	m.campaignRepo.EXPECT().OldestUpdatedAt(scopes).Return(timePtr(now.Add(-CacheTTL+time.Second)), nil)
	m.campaignRepo.EXPECT().List(scopes).Return(cached, nil)

	result, err := svc.ListCampaigns(context.Background(), []string{"123"}, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, cached, result.Campaigns)
	assert.Empty(t, result.Errors)
}

func TestListCampaignsForceRefreshBypassesFreshCache(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	scopes := []string{"123"}
	fetched := []*domain.Campaign{{ID: "c1", AccountID: "123"}}

	m.meta.EXPECT().FetchCampaigns(gomock.Any(), "123").Return(fetched, nil)
	m.campaignRepo.EXPECT().Upsert("123", fetched).Return(1, nil)
	m.campaignRepo.EXPECT().List(scopes).Return(fetched, nil)

	result, err := svc.ListCampaigns(context.Background(), []string{"123"}, ListOptions{ForceRefresh: true})
	require.NoError(t, err)
	assert.Equal(t, fetched, result.Campaigns)
}

func TestListCampaignsPartialRemoteFailure(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	scopes := []string{"111", "222"}
	fetched := []*domain.Campaign{{ID: "c2", AccountID: "222"}}
	cached := []*domain.Campaign{{ID: "c0", AccountID: "111"}, {ID: "c2", AccountID: "222"}}

	m.campaignRepo.EXPECT().OldestUpdatedAt(scopes).Return(nil, nil)
	m.meta.EXPECT().FetchCampaigns(gomock.Any(), "111").Return(nil, rateLimitErr())
	m.meta.EXPECT().FetchCampaigns(gomock.Any(), "222").Return(fetched, nil)
	m.campaignRepo.EXPECT().Upsert("222", fetched).Return(1, nil)
	m.campaignRepo.EXPECT().List(scopes).Return(cached, nil)

	result, err := svc.ListCampaigns(context.Background(), []string{"act_111", "act_222"}, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, cached, result.Campaigns)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "111", result.Errors[0].Scope)
	assert.Equal(t, "campaigns.fetch", result.Errors[0].Operation)
	assert.True(t, result.Errors[0].RateLimited)
}

func TestListCampaignsStalenessReadErrorPropagates(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	m.campaignRepo.EXPECT().OldestUpdatedAt([]string{"123"}).Return(nil, errors.New("relation does not exist"))

	result, err := svc.ListCampaigns(context.Background(), []string{"123"}, ListOptions{})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestListAdsEmptyCacheRemoteFailure(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	scopes := []string{"123"}

	m.adRepo.EXPECT().OldestUpdatedAt(scopes).Return(nil, nil)
	m.meta.EXPECT().FetchAds(gomock.Any(), "123").Return(nil, errors.New("unexpected EOF"))
	m.adRepo.EXPECT().List(scopes).Return([]*domain.Ad{}, nil)

	result, err := svc.ListAds(context.Background(), []string{"123"}, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Ads)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "ads.fetch", result.Errors[0].Operation)
	assert.False(t, result.Errors[0].RateLimited)
}

func TestListAdsFreshCache(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	scopes := []string{"123"}
	cached := []*domain.Ad{{ID: "a1", AccountID: "123", CampaignID: "c1"}}

	m.adRepo.EXPECT().OldestUpdatedAt(scopes).Return(timePtr(now.Add(-12*time.Hour)), nil)
	m.adRepo.EXPECT().List(scopes).Return(cached, nil)

	result, err := svc.ListAds(context.Background(), []string{"act_123"}, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, cached, result.Ads)
}
