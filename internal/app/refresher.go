package app

import (
	"context"
	"time"

	"github.com/newshub-app/interactions/internal/domain"
	"github.com/newshub-app/interactions/internal/reconciler"
)

// Refresher periodically reconciles local interaction state against the
// backend, picking up changes made from other devices. A failed refresh
// is logged and retried at the next tick.
type Refresher struct {
	Reconciler *reconciler.Reconciler
	Interval   time.Duration
}

func (r *Refresher) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	if err := r.Reconciler.Refresh(ctx); err != nil {
		logger.WarnContext(ctx, "initial interaction refresh failed", "error", err)
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Reconciler.Refresh(ctx); err != nil {
				logger.WarnContext(ctx, "interaction refresh failed", "error", err)
			}
		}
	}
}
