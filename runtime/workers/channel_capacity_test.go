package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestChannelCapacityWorker_Sample(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	full := make(chan int, 4)
	for i := 0; i < 4; i++ {
		full <- i
	}
	half := make(chan string, 4)
	half <- "a"
	half <- "b"

	tests := []struct {
		name     string
		channel  any
		expected float64
	}{
		{name: "Saturated", channel: full, expected: 1},
		{name: "Half full", channel: half, expected: 0.5},
		{name: "Unbuffered", channel: make(chan int), expected: 0},
		{name: "Not a channel", channel: 42, expected: 0},
	}
	worker := NewChannelCapacityWorker(log, time.Second)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, worker.Sample(NamedChannel{Name: tt.name, Channel: tt.channel}), 0.001)
		})
	}
}

func TestChannelCapacityWorker_Stops_With_Context(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	worker := NewChannelCapacityWorker(log, 5*time.Millisecond, NamedChannel{Name: "events", Channel: make(chan int, 1)})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))
}
