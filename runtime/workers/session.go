package workers

import (
	"context"
	"fmt"
	"log/slog"

	"world-chat/domain"
	"world-chat/errors"
	"world-chat/packet"
)

// Inbound is one client packet waiting in a session inbox.
type Inbound struct {
	Opcode  packet.Opcode
	Payload []byte
}

// HandleFunc processes one inbound packet on behalf of its sender.
type HandleFunc func(ctx context.Context, sender *domain.Participant, op packet.Opcode, payload []byte)

// SessionWorker serializes the packets of one participant.
// Packets of a single session are handled in arrival order, never concurrently.
type SessionWorker struct {
	participant *domain.Participant
	inbox       chan Inbound
	handle      HandleFunc
	log         *slog.Logger
}

func NewSessionWorker(p *domain.Participant, bufferSize int, handle HandleFunc, log *slog.Logger) *SessionWorker {
	return &SessionWorker{
		participant: p,
		inbox:       make(chan Inbound, bufferSize),
		handle:      handle,
		log:         log.With("session", p.ID),
	}
}

// Submit queues a packet without blocking.
func (w *SessionWorker) Submit(in Inbound) error {
	select {
	case w.inbox <- in:
		return nil
	default:
		return fmt.Errorf("%w: %d packets pending", errors.ErrSessionBusy, len(w.inbox))
	}
}

func (w *SessionWorker) Run(ctx context.Context) error {
	for {
		select {
		case in := <-w.inbox:
			w.handle(ctx, w.participant, in.Opcode, in.Payload)
		case <-ctx.Done():
			w.log.Debug("Session closed", "pending", len(w.inbox))
			return nil
		}
	}
}
