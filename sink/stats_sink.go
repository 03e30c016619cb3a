package sink

import (
	"context"
	"sync/atomic"

	"world-chat/domain"
	"world-chat/domain/event"
)

// StatsSink counts audited chat per kind.
type StatsSink struct {
	total      atomic.Uint64
	recipients atomic.Uint64
	kinds      [domain.MaxKind]atomic.Uint64
}

func NewStatsSink() *StatsSink {
	return &StatsSink{}
}

func (s *StatsSink) Consume(_ context.Context, e event.ChatObserved) error {
	s.total.Add(1)
	s.recipients.Add(uint64(e.Recipients))
	if e.Kind < domain.MaxKind {
		s.kinds[e.Kind].Add(1)
	}
	return nil
}

type Stats struct {
	Total      uint64
	Recipients uint64
	ByKind     map[domain.Kind]uint64
}

// Snapshot only lists kinds seen at least once.
func (s *StatsSink) Snapshot() Stats {
	stats := Stats{
		Total:      s.total.Load(),
		Recipients: s.recipients.Load(),
		ByKind:     make(map[domain.Kind]uint64),
	}
	for k := range s.kinds {
		if n := s.kinds[k].Load(); n > 0 {
			stats.ByKind[domain.Kind(k)] = n
		}
	}
	return stats
}
