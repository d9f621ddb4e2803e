package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/config"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/store"
)

// Scheduler drives the optional daily dataset reload. The store is
// otherwise rebuilt only at startup or through the admin reload endpoint.
type Scheduler struct {
	cron      *cron.Cron
	store     *store.Store
	config    *config.Config
	logger    *slog.Logger
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(st *store.Store, cfg *config.Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		store:  st,
		config: cfg,
		logger: logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Reload.DailyRunEnabled {
		s.logger.Info("scheduler: daily reload is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Reload.DailyRunTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		s.logger.Info("scheduler: starting daily dataset reload")
		if err := s.store.Reload(); err != nil {
			s.logger.Error("scheduler: daily reload failed", "error", err)
			return
		}
		s.logger.Info("scheduler: daily reload completed", "listings", s.store.Count())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler: started",
		"daily_run_time", s.config.Reload.DailyRunTime, "cron", cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		s.logger.Info("scheduler: stopped")
	}
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "06:00" -> "0 6 * * *" (run at 6:00 AM every day)
func (s *Scheduler) parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	s.logger.Warn("scheduler: failed to parse time, using default 06:00", "value", timeStr)
	return "0 6 * * *"
}
