package sync

import (
	"time"

	"ddplanner_backend/pkg/logger"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// SyncScheduler periodically pushes local plan state to the remote
// store so writes that missed their background mirror eventually
// converge.
type SyncScheduler struct {
	scheduler  *gocron.Scheduler
	reconciler *Reconciler
	interval   time.Duration
}

func NewSyncScheduler(reconciler *Reconciler, interval time.Duration) *SyncScheduler {
	return &SyncScheduler{
		scheduler:  gocron.NewScheduler(time.UTC),
		reconciler: reconciler,
		interval:   interval,
	}
}

// Start schedules the periodic sync and returns immediately.
func (s *SyncScheduler) Start() {
	s.scheduler.Every(s.interval).Do(s.runOnce)
	s.scheduler.StartAsync()
	logger.Log.Info("sync scheduler started", zap.Duration("interval", s.interval))
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *SyncScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *SyncScheduler) runOnce() {
	if err := s.reconciler.SyncAllUsers(); err != nil {
		logger.Log.Warn("periodic sync incomplete", zap.Error(err))
	}
}
