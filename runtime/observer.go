package runtime

import (
	"context"
	"log/slog"

	"world-chat/domain/event"
)

// ChannelObserver hands observed chat events to the fanout worker.
// It never blocks the pipeline: when the buffer is full the event is lost.
type ChannelObserver struct {
	events chan<- event.ChatObserved
	log    *slog.Logger
}

func NewChannelObserver(events chan<- event.ChatObserved, log *slog.Logger) *ChannelObserver {
	return &ChannelObserver{events: events, log: log}
}

func (o *ChannelObserver) OnChat(_ context.Context, e event.ChatObserved) error {
	select {
	case o.events <- e:
	default:
		o.log.Warn("Chat event buffer full, dropping event", "id", e.ID, "kind", e.Kind)
	}
	return nil
}
