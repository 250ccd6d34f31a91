// Package maintenance runs background housekeeping for the API server.
package maintenance

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/store"
)

// Pruner deletes LLM events older than a retention window on a schedule.
type Pruner struct {
	scheduler *gocron.Scheduler
	events    store.EventRepo
	retention time.Duration
	log       *logger.Logger
	now       func() time.Time
}

// NewPruner creates a pruner. It does nothing until Start.
func NewPruner(events store.EventRepo, retention time.Duration, log *logger.Logger) *Pruner {
	if log == nil {
		log = logger.Discard()
	}
	return &Pruner{
		scheduler: gocron.NewScheduler(time.UTC),
		events:    events,
		retention: retention,
		log:       log,
		now:       time.Now,
	}
}

// Start prunes immediately and then every hour.
func (p *Pruner) Start() error {
	if _, err := p.scheduler.Every(1).Hour().Do(p.run); err != nil {
		return err
	}
	p.scheduler.StartAsync()
	return nil
}

// Stop halts the schedule.
func (p *Pruner) Stop() {
	p.scheduler.Stop()
}

func (p *Pruner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := p.RunOnce(ctx); err != nil {
		p.log.Prd("LLM event prune failed", "error", err)
	}
}

// RunOnce deletes events older than the retention window and returns how
// many were removed.
func (p *Pruner) RunOnce(ctx context.Context) (int, error) {
	cutoff := p.now().Add(-p.retention)
	n, err := p.events.PruneLLMEvents(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		p.log.Test("LLM events pruned", "count", n, "before", cutoff.Format(time.RFC3339))
	}
	return n, nil
}
