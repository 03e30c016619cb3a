package sink

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"world-chat/domain/event"
	"world-chat/repositories"
)

// IndexSink buffers audited chat and feeds the full-text index in batches.
// A batch is flushed once it holds maxBatch records or bufferTimeout after its first record.
type IndexSink struct {
	mu            sync.Mutex
	timer         *time.Timer
	index         repositories.IChatLogIndex
	log           *slog.Logger
	records       []repositories.ChatRecord
	maxBatch      int
	bufferTimeout time.Duration
}

func NewIndexSink(index repositories.IChatLogIndex, log *slog.Logger, maxBatch int, bufferTimeout time.Duration) *IndexSink {
	return &IndexSink{
		index:         index,
		log:           log,
		maxBatch:      max(maxBatch, 1),
		bufferTimeout: bufferTimeout,
	}
}

func (s *IndexSink) Consume(_ context.Context, e event.ChatObserved) error {
	s.mu.Lock()
	s.records = append(s.records, toRecord(e))

	// Low traffic must not leave records stuck in the buffer
	if len(s.records) == 1 && s.timer == nil {
		s.timer = time.AfterFunc(s.bufferTimeout, func() {
			if err := s.Flush(); err != nil {
				s.log.Error("Timeout flush of chat index failed", "error", err)
			}
		})
	}
	isFull := len(s.records) >= s.maxBatch
	s.mu.Unlock()

	if isFull {
		return s.Flush()
	}
	return nil
}

// Flush indexes whatever is buffered. It is safe to call concurrently and on shutdown.
func (s *IndexSink) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if len(s.records) == 0 {
		s.mu.Unlock()
		return nil
	}
	batch := s.records
	s.records = make([]repositories.ChatRecord, 0, s.maxBatch)
	s.mu.Unlock()

	if err := s.index.Index(batch...); err != nil {
		return fmt.Errorf("failed to index chat batch: %w", err)
	}
	s.log.Debug("Chat batch indexed", "count", len(batch))
	return nil
}
