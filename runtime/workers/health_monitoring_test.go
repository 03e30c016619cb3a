package workers_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"world-chat/runtime/workers"
)

func TestHealthMonitoringWorker_Sample(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	worker := workers.NewHealthMonitoringWorker(log, int32(os.Getpid()), time.Second, func() int { return 3 })

	health, err := worker.Sample()

	req.NoError(err)
	req.Equal(3, health.Sessions)
	req.Positive(health.Goroutines)
	req.GreaterOrEqual(health.CPU, 0.0)
}

func TestHealthMonitoringWorker_stops_with_context(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	worker := workers.NewHealthMonitoringWorker(log, int32(os.Getpid()), 5*time.Millisecond, func() int { return 0 })
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))
}
