package scheduler

import (
	"context"
	"log/slog"
	"time"

	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/config"
	"volunteer-hub/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the periodic lifecycle sweep. SkipIfStillRunning keeps
// an overrunning tick from stacking up behind itself; the next tick's
// selection naturally excludes rows an earlier tick already advanced.
type Scheduler struct {
	cron  *cron.Cron
	sweep commands.SweepCommands
	clock clock.Clock
	cfg   config.SweepConfig
}

func NewScheduler(cfg config.SweepConfig, sweep commands.SweepCommands, clk clock.Clock) *Scheduler {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DiscardLogger),
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))
	return &Scheduler{
		cron:  c,
		sweep: sweep,
		clock: clk,
		cfg:   cfg,
	}
}

func (s *Scheduler) Start() {
	if !s.cfg.Enabled {
		slog.Info("sweep scheduler disabled")
		return
	}

	s.cron.Schedule(cron.Every(s.cfg.Interval), cron.FuncJob(s.tick))
	s.cron.Start()
	slog.Info("sweep scheduler started", "interval", s.cfg.Interval.String())
}

// Stop waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("sweep scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Interval)
	defer cancel()

	now := s.clock.Now()
	result, err := s.sweep.RunSweep(ctx, now)
	if err != nil {
		slog.Error("sweep tick failed", "error", err.Error())
		return
	}

	if result.Started > 0 || result.Completed > 0 || result.Failed > 0 {
		slog.Info("sweep tick finished",
			"started", result.Started,
			"completed", result.Completed,
			"credited", result.Credited,
			"failed", result.Failed,
			"at", now.Format(time.RFC3339))
	}
}
