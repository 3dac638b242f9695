package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ramyaaaa4/sign-language-recognition/contract"
)

// Reaper periodically evicts connections that stopped signaling liveness.
// Eviction reuses the exact disconnect teardown, so a reaped connection's
// peer cannot tell a timeout from an unplugged cable. This is the only
// implicit cancellation mechanism in the system.
type Reaper struct {
	log      *slog.Logger
	reaper   contract.IdleReaper
	interval time.Duration
}

func NewReaper(log *slog.Logger, reaper contract.IdleReaper, interval time.Duration) *Reaper {
	return &Reaper{log: log, reaper: reaper, interval: interval}
}

// Run executes the main loop of the worker, sweeping idle connections on a
// fixed period until the context is canceled.
func (w *Reaper) Run(ctx context.Context) error {
	w.log.Info("Starting presence reaper", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := w.reaper.ReapIdle(ctx, time.Now().UTC()); n > 0 {
				w.log.Info("Reaped idle connections", "count", n)
			}
		}
	}
}
