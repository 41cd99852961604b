package service

import (
	"context"
	"log/slog"
	"time"
)

// Periodic runs fn every interval until ctx is done. Failures are logged and
// the next tick tries again.
type Periodic struct {
	logger   *slog.Logger
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

func NewPeriodic(logger *slog.Logger, name string, interval time.Duration, fn func(ctx context.Context) error) *Periodic {
	return &Periodic{
		logger:   logger.With(slog.String("worker", name)),
		name:     name,
		interval: interval,
		fn:       fn,
	}
}

func (p *Periodic) Name() string {
	return p.name
}

func (p *Periodic) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("worker started", slog.Duration("interval", p.interval))
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopped")
			return nil
		case <-ticker.C:
			if err := p.fn(ctx); err != nil && ctx.Err() == nil {
				p.logger.Error("worker run failed", slog.Any("error", err))
			}
		}
	}
}
