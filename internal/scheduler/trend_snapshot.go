// Package scheduler contains the cron services that keep derived data fresh.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/config"
)

// TrendSnapshotService recomputes the per-company 30-day click windows
// that feed the trend ratio. The windows are materialized into
// company_click_stats so ranking reads never aggregate raw click rows.
type TrendSnapshotService struct {
	scheduler           *gocron.Scheduler
	clickRepo           repository.ClickRepository
	config              config.TrendSnapshot
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewTrendSnapshotService(clickRepo repository.ClickRepository, cfg *config.Config) *TrendSnapshotService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.TrendSnapshot.CronSchedule,
	}).Info("Trend snapshot scheduler configuration loaded")

	return &TrendSnapshotService{
		scheduler: gocron.NewScheduler(time.Local),
		clickRepo: clickRepo,
		config:    cfg.TrendSnapshot,
	}
}

func (s *TrendSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Trend snapshot cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting trend snapshot cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshClickWindows(); err != nil {
			logrus.WithError(err).Error("Trend snapshot run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling trend snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping trend snapshot cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshClickWindows counts the current and previous 30-day click
// windows per company and upserts them into the stats table. Only one
// run executes at a time.
func (s *TrendSnapshotService) RefreshClickWindows() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Trend snapshot already running")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Starting trend snapshot run")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	windows, err := s.clickRepo.WindowCounts(ctx, time.Now())
	if err != nil {
		logrus.WithError(err).Error("Failed to count click windows")
		return err
	}

	if err := s.clickRepo.UpsertStats(ctx, windows); err != nil {
		logrus.WithError(err).Error("Failed to persist click windows")
		return err
	}

	logrus.WithField("companies", len(windows)).Info("Trend snapshot run completed")
	return nil
}

// TriggerManualSync starts a snapshot run outside the schedule.
func (s *TrendSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Trend snapshot already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual trend snapshot run")
	go s.RefreshClickWindows()
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *TrendSnapshotService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
