package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

const saturationWarning = 0.8

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically samples the fill level of buffered channels.
// Reading len and cap never blocks the goroutines using the channel.
// A channel filled above 80% is reported as a warning: its producers are about to drop.
type ChannelCapacityWorker struct {
	log      *slog.Logger
	channels []NamedChannel
	interval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, interval time.Duration, channels ...NamedChannel) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{log: log, channels: channels, interval: interval}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			for _, nc := range w.channels {
				w.Sample(nc)
			}
		}
	}
}

// Sample logs the fill level of one channel and returns it, between 0 and 1.
func (w *ChannelCapacityWorker) Sample(nc NamedChannel) float64 {
	v := reflect.ValueOf(nc.Channel)
	if v.Kind() != reflect.Chan {
		w.log.Error("Provided object is not a channel", "name", nc.Name)
		return 0
	}
	capacity, length := v.Cap(), v.Len()
	if capacity == 0 {
		return 0
	}
	ratio := float64(length) / float64(capacity)
	if ratio >= saturationWarning {
		w.log.Warn("Channel close to saturation", "name", nc.Name, "length", length, "capacity", capacity)
	} else {
		w.log.Debug("Channel capacity", "name", nc.Name, "length", length, "capacity", capacity)
	}
	return ratio
}
