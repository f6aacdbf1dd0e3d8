package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/listing"
)

// EntitySyncConfig holds the nightly entity refresh settings.
type EntitySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// EntitySyncService refreshes the cached ad accounts, campaigns and ads on a
// cron schedule so the first dashboard request of the day never pays the full
// remote fetch.
type EntitySyncService struct {
	scheduler *gocron.Scheduler
	config    EntitySyncConfig
	lister    listing.EntityLister

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewEntitySyncService(lister listing.EntityLister, appConfig *config.Config) *EntitySyncService {
	syncConfig := EntitySyncConfig{
		CronSchedule: appConfig.EntitySync.CronSchedule,
		SyncEnabled:  appConfig.EntitySync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Entity sync scheduler configured")

	return &EntitySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		lister:    lister,
	}
}

// Start schedules the sync job and runs the scheduler until ctx is cancelled.
func (s *EntitySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Entity sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting entity sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllEntities(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling entity sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping entity sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllEntities force-refreshes accounts first, then campaigns and ads for
// every active account. Only one sync runs at a time; overlapping triggers
// are dropped.
func (s *EntitySyncService) syncAllEntities(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Entity sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Starting entity sync")

	opts := listing.ListOptions{ForceRefresh: true}

	accountsResult, err := s.lister.ListAdAccounts(ctx, opts)
	if err != nil {
		logrus.WithError(err).Error("Entity sync failed while refreshing ad accounts")
		return
	}
	logFetchErrors("accounts", accountsResult.Errors)

	activeIDs := make([]string, 0, len(accountsResult.Accounts))
	for _, acc := range accountsResult.Accounts {
		if acc.Status == domain.AdAccountStatusActive {
			activeIDs = append(activeIDs, acc.ID)
		}
	}

	if len(activeIDs) == 0 {
		logrus.Info("No active ad accounts to sync")
		s.lastSyncCompletedAt = time.Now()
		return
	}

	campaignsResult, err := s.lister.ListCampaigns(ctx, activeIDs, opts)
	if err != nil {
		logrus.WithError(err).Error("Entity sync failed while refreshing campaigns")
		return
	}
	logFetchErrors("campaigns", campaignsResult.Errors)

	adsResult, err := s.lister.ListAds(ctx, activeIDs, opts)
	if err != nil {
		logrus.WithError(err).Error("Entity sync failed while refreshing ads")
		return
	}
	logFetchErrors("ads", adsResult.Errors)

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"accounts":  len(accountsResult.Accounts),
		"campaigns": len(campaignsResult.Campaigns),
		"ads":       len(adsResult.Ads),
	}).Info("Entity sync completed")
}

// TriggerManualSync starts a sync in the background unless one is running.
func (s *EntitySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Entity sync already in progress, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual entity sync")
	go s.syncAllEntities(context.Background())
}

// GetStatus returns the scheduler state for the cron status endpoint.
func (s *EntitySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func logFetchErrors(kind string, errs []domain.FetchError) {
	for _, fe := range errs {
		logrus.WithFields(logrus.Fields{
			"kind":         kind,
			"scope":        fe.Scope,
			"operation":    fe.Operation,
			"rate_limited": fe.RateLimited,
		}).Warn("Entity sync: scope refresh failed: " + fe.Message)
	}
}
