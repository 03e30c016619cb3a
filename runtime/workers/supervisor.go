package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"world-chat/contract"
	"world-chat/errors"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

// Supervisor owns a context and its cancel function.
// Each worker runs in its own goroutine; a panic or an error restarts it after a short delay,
// a nil return stops it for good. Run returns once every worker has returned.
type Supervisor struct {
	mu           sync.Mutex
	cancel       context.CancelFunc
	stopped      bool
	wg           *sync.WaitGroup
	log          *slog.Logger
	workers      []contract.Worker
	restartAfter time.Duration
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartAfter: waitTimeBeforeRestart}
}

// WithRestartInterval replaces the delay between a crash and the restart.
func (s *Supervisor) WithRestartInterval(d time.Duration) *Supervisor {
	if d > 0 {
		s.restartAfter = d
	}
	return s
}

// Run starts every added worker under a context derived from ctx and waits for all of them.
// Cancelling ctx or calling Stop ends the workers. Run after Stop returns at once.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.cancel = cancel
	s.mu.Unlock()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs a single worker under supervision.
// Workers started after Run keep the supervisor waiting until they return.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Debug("Worker stopping", "name", workerName)
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				s.log.Debug("Worker finished", "name", workerName)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.restartAfter):
			}
		}
	}()
}

// Stop cancels the supervised context. Run returns once the workers have noticed.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}
