package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/OilLobbyist/silver-tracker/internal/service/stack"
)

// Scheduler manages scheduled tasks. Its only job today is sweeping idle
// sessions so abandoned stacks do not accumulate in memory.
type Scheduler struct {
	cron     *cron.Cron
	sessions *stack.SessionManager
	schedule string
	maxIdle  time.Duration
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. schedule accepts standard
// five-field cron expressions and the @every shorthand.
func NewScheduler(sessions *stack.SessionManager, schedule string, maxIdle time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		sessions: sessions,
		schedule: schedule,
		maxIdle:  maxIdle,
		logger:   logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler",
		zap.String("schedule", s.schedule),
		zap.Duration("max_idle", s.maxIdle))

	_, err := s.cron.AddFunc(s.schedule, s.sweepSessions)
	if err != nil {
		s.logger.Error("failed to schedule session sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sweepSessions() {
	removed := s.sessions.Sweep(s.maxIdle)
	if removed > 0 {
		s.logger.Info("swept idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", s.sessions.Len()))
	}
}
