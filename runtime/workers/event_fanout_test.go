package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"world-chat/domain"
	"world-chat/domain/event"
	"world-chat/mocks"
)

func observed(text string) event.ChatObserved {
	return event.ChatObserved{ID: uuid.New(), Sender: 1, SenderName: "Ana", Kind: domain.KindSay, Text: text}
}

func TestEventFanout_Fanout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	first := mocks.NewMockEventSink(ctrl)
	second := mocks.NewMockEventSink(ctrl)
	evt := observed("hello")

	// Given two sinks, the first one failing
	first.EXPECT().Consume(gomock.Any(), evt).Return(context.Canceled).Times(1)
	second.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	fanout := NewEventFanout(log, make(chan event.ChatObserved)).Add(first, second)

	// When an event is fanned out
	// Then the failure does not prevent the second sink from consuming it
	req.NotPanics(func() { fanout.Fanout(context.Background(), evt) })
}

func TestEventFanout_SinkPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	broken := mocks.NewMockEventSink(ctrl)
	healthy := mocks.NewMockEventSink(ctrl)

	broken.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e event.ChatObserved) error { panic("disk on fire") }).Times(1)
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	fanout := NewEventFanout(log, make(chan event.ChatObserved)).Add(broken, healthy)

	req.NotPanics(func() { fanout.Fanout(context.Background(), observed("hello")) })
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	slow := mocks.NewMockEventSink(ctrl)

	// Given a sink waiting on its context
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e event.ChatObserved) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)

	fanout := NewEventFanout(log, make(chan event.ChatObserved)).
		Add(slow).
		WithSinkTimeout(30 * time.Millisecond)

	// Then the fanout gives up after the sink timeout
	start := time.Now()
	fanout.Fanout(context.Background(), observed("hello"))
	req.Less(time.Since(start), time.Second)
}

func TestEventFanout_Run_Keeps_Order(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	events := make(chan event.ChatObserved, 3)
	got := make(chan string, 3)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e event.ChatObserved) error {
			got <- e.Text
			return nil
		}).Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewEventFanout(log, events).Add(sink).Run(ctx) }()

	// When three events are observed
	for _, text := range []string{"one", "two", "three"} {
		events <- observed(text)
	}

	// Then the sink sees them in order
	for _, want := range []string{"one", "two", "three"} {
		select {
		case text := <-got:
			req.Equal(want, text)
		case <-time.After(time.Second):
			req.Fail("event not consumed")
		}
	}

	cancel()
	req.NoError(<-done)
}
