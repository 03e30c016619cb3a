package workers

import (
	"context"
	"log/slog"
	goruntime "runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Health is one sample of the chat server process.
type Health struct {
	CPU        float64
	RAM        float32
	Goroutines int
	Sessions   int
}

// HealthMonitoringWorker periodically logs the resource usage of the chat server.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	pid            int32
	metricInterval time.Duration
	sessions       func() int
}

func NewHealthMonitoringWorker(log *slog.Logger, pid int32, metricInterval time.Duration, sessions func() int) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, pid: pid, metricInterval: metricInterval, sessions: sessions}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			health, err := w.Sample()
			if err != nil {
				w.log.Error("Error while sampling process health", "pid", w.pid, "err", err)
				continue
			}
			w.log.Info("Chat server health",
				"cpu", health.CPU,
				"ram", health.RAM,
				"goroutines", health.Goroutines,
				"sessions", health.Sessions)
		}
	}
}

func (w *HealthMonitoringWorker) Sample() (Health, error) {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return Health{}, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return Health{}, err
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		return Health{}, err
	}
	return Health{
		CPU:        cpu,
		RAM:        ram,
		Goroutines: goruntime.NumGoroutine(),
		Sessions:   w.sessions(),
	}, nil
}
