package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"github.com/ramyaaaa4/sign-language-recognition/observability"
)

// Counts is the live-state slice of the coordinator the telemetry worker
// reports on.
type Counts interface {
	Online() int
	ActiveSessions() int
}

// Telemetry logs process health (CPU, RAM) and coordinator counters on a
// fixed period. Purely observational; it mutates nothing.
type Telemetry struct {
	log      *slog.Logger
	counts   Counts
	monitor  *observability.Monitor
	interval time.Duration
}

func NewTelemetry(log *slog.Logger, counts Counts, monitor *observability.Monitor, interval time.Duration) *Telemetry {
	return &Telemetry{log: log, counts: counts, monitor: monitor, interval: interval}
}

func (w *Telemetry) Run(ctx context.Context) error {
	w.log.Info("Starting telemetry worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.monitor.Snapshot()
			w.log.Info("telemetry",
				"online", w.counts.Online(),
				"active_sessions", w.counts.ActiveSessions(),
				"events_delivered", stats.EventsDelivered,
				"events_dropped", stats.EventsDropped,
				"alerts_raised", stats.AlertsRaised,
				"reaped", stats.Reaped,
				"ram_bytes", rss,
				"cpu_percent", cpu)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
