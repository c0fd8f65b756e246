package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/rates"
)

// RatesRefreshService re-fetches the exchange-rate table ahead of its
// TTL so cashback estimates rarely pay the fetch latency inline.
type RatesRefreshService struct {
	scheduler           *gocron.Scheduler
	provider            *rates.CachedProvider
	config              config.RatesRefresh
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRatesRefreshService(provider *rates.CachedProvider, cfg *config.Config) *RatesRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.RatesRefresh.CronSchedule,
	}).Info("Rates refresh scheduler configuration loaded")

	return &RatesRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		provider:  provider,
		config:    cfg.RatesRefresh,
	}
}

func (s *RatesRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Rates refresh cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting rates refresh cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshRates(); err != nil {
			logrus.WithError(err).Error("Rates refresh run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling rates refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping rates refresh cron")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RatesRefreshService) RefreshRates() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Rates refresh already running")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Starting rates refresh run")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.provider.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("Failed to refresh exchange rates")
		return err
	}

	logrus.Info("Rates refresh run completed")
	return nil
}

// TriggerManualSync starts a refresh outside the schedule.
func (s *RatesRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rates refresh already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual rates refresh run")
	go s.RefreshRates()
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *RatesRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_fetched_at":        s.provider.LastFetched(),
	}
}
