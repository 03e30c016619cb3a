package sink

import (
	"context"
	"fmt"
	"log/slog"

	"world-chat/domain/event"
	"world-chat/repositories"
)

// DiskSink keeps every audited chat event in the chat log.
type DiskSink struct {
	repository repositories.IChatLogRepository
	log        *slog.Logger
}

func NewDiskSink(repository repositories.IChatLogRepository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.ChatObserved) error {
	record := toRecord(e)
	if err := d.repository.Store(record); err != nil {
		return fmt.Errorf("store chat record %s: %w", e.ID, err)
	}
	d.log.Debug("Chat record stored", "id", e.ID, "kind", e.Kind, "detected", record.Detected)
	return nil
}
