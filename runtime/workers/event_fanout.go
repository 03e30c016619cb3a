package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"world-chat/contract"
	"world-chat/domain/event"
	"world-chat/errors"
)

const defaultSinkTimeout = 2 * time.Second

// EventFanout hands every observed chat event to each registered sink.
//
// Delivery is best effort: a sink that fails, panics or runs past its
// timeout loses the event and the next sink still receives it.
// Sinks see events in the order the pipeline observed them.
type EventFanout struct {
	log     *slog.Logger
	events  <-chan event.ChatObserved
	sinks   []contract.EventSink
	timeout time.Duration
}

func NewEventFanout(log *slog.Logger, events <-chan event.ChatObserved) *EventFanout {
	return &EventFanout{log: log, events: events, timeout: defaultSinkTimeout}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

// WithSinkTimeout bounds the time a single sink may spend on one event.
func (w *EventFanout) WithSinkTimeout(d time.Duration) *EventFanout {
	if d > 0 {
		w.timeout = d
	}
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping chat event fanout")
			return nil
		}
	}
}

// Fanout One sink after the other for each event
func (w *EventFanout) Fanout(ctx context.Context, evt event.ChatObserved) {
	for _, sink := range w.sinks {
		if err := w.consume(ctx, sink, evt); err != nil {
			w.log.Warn("Sink failed to consume chat event",
				"sink", fmt.Sprintf("%T", sink), "id", evt.ID, "error", err)
		}
	}
}

func (w *EventFanout) consume(ctx context.Context, sink contract.EventSink, evt event.ChatObserved) (err error) {
	sinkCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return sink.Consume(sinkCtx, evt)
}
