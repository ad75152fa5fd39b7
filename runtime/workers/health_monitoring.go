package workers

import (
	"context"
	"cx-chat/observability"
	"log/slog"
	"os"
	"time"

	_ "github.com/shirou/gopsutil"
	"github.com/shirou/gopsutil/process"
)

// QueueReporter exposes the live matching state without widening the
// matcher contract. Both counts are snapshots, stale by design.
type QueueReporter interface {
	WaitingCounts() (customers, agents int)
	LiveSessions() int
}

// HealthMonitoringWorker samples the service's own process and refreshes
// the shared stats snapshot on each tick.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	monitor        *observability.Monitor
	reporter       QueueReporter
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	monitor *observability.Monitor,
	reporter QueueReporter,
	metricInterval time.Duration,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		monitor:        monitor,
		reporter:       reporter,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		w.log.Error("Error while retrieving own process", "err", err)
		proc = nil
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			customers, agents := w.reporter.WaitingCounts()
			live := w.reporter.LiveSessions()
			w.monitor.Refresh(customers, agents, live)
			stats := w.monitor.GetLatest()

			if proc == nil {
				w.log.Info("Health",
					"waiting_customers", customers,
					"waiting_agents", agents,
					"live_sessions", live,
					"matches", stats.MatchesMade)
				continue
			}
			cpu, err := proc.CPUPercent()
			if err != nil {
				w.log.Error("Error while finding process cpu usage", "err", err)
				continue
			}
			ram, err := proc.MemoryPercent()
			if err != nil {
				w.log.Error("Error while finding process ram usage", "err", err)
				continue
			}
			w.log.Info("Health",
				"waiting_customers", customers,
				"waiting_agents", agents,
				"live_sessions", live,
				"matches", stats.MatchesMade,
				"cpu", cpu,
				"ram", ram)
		}
	}
}
