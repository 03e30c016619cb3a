package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"world-chat/mocks"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log).WithRestartInterval(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(ctx)
		close(done)
	}()

	// Then the worker is restarted after each panic
	req.Eventually(func() bool { return calls.Load() >= 3 }, time.Second, 10*time.Millisecond)

	// And the supervisor returns once the context is over
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should have stopped with its context")
	}
}

func TestSupervisor_RestartOnError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker failing once before succeeding
	gomock.InOrder(
		workerMock.EXPECT().Run(gomock.Any()).Return(context.DeadlineExceeded),
		workerMock.EXPECT().Run(gomock.Any()).Return(nil),
	)

	sup := NewSupervisor(log).WithRestartInterval(10 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should have stopped after the second run")
	}
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log)

	// Given a channel to notify when Run() terminated
	done := make(chan struct{})

	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then supervisor detected a success and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	started := make(chan struct{})
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		}).
		Times(1)

	sup := NewSupervisor(log)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()
	<-started

	// When the supervisor is stopped
	sup.Stop()

	// Then every worker returns
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should have stopped")
	}
}

func TestSupervisor_Stop_Before_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Given a supervisor stopped before it ever ran
	sup := NewSupervisor(log)
	sup.Add(workerMock)
	sup.Stop()

	// When it is run, no worker starts and Run returns at once
	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should not run once stopped")
	}
}

func TestSupervisor_Stop_Races_With_Run(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	for range 20 {
		ctrl := gomock.NewController(t)
		workerMock := mocks.NewMockWorker(ctrl)
		workerMock.EXPECT().
			Run(gomock.Any()).
			DoAndReturn(func(ctx context.Context) error {
				<-ctx.Done()
				return nil
			}).
			MaxTimes(1)

		sup := NewSupervisor(log)
		sup.Add(workerMock)
		done := make(chan struct{})
		go func() {
			sup.Run(context.Background())
			close(done)
		}()

		// Stop may land before, during or after Run publishes its cancel func
		sup.Stop()

		select {
		case <-done:
		case <-time.After(time.Second):
			require.Fail(t, "Supervisor should return after Stop")
		}
	}
}
