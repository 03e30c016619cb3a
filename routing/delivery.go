package routing

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"world-chat/contract"
	"world-chat/domain"
	"world-chat/domain/event"
)

// Deliverer holds the delivery primitives shared by the router and the addon bridge.
// Every frame is offered to the observer before it is transmitted.
type Deliverer struct {
	observer contract.ChatObserver
	log      *slog.Logger
}

// NewDeliverer returns a deliverer. observer may be nil.
func NewDeliverer(observer contract.ChatObserver, log *slog.Logger) *Deliverer {
	return &Deliverer{observer: observer, log: log}
}

// Offer hands e to the observer. Observer errors and panics are logged and swallowed.
func (d *Deliverer) Offer(ctx context.Context, e event.ChatObserved) {
	if d.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Chat observer panicked", "kind", e.Kind, "sender", e.Sender, "panic", r)
		}
	}()
	if err := d.observer.OnChat(ctx, e); err != nil {
		d.log.Warn("Chat observer failed", "kind", e.Kind, "sender", e.Sender, "error", err)
	}
}

// Send offers frame to the observer then writes it to every recipient that does not ignore the sender.
// recipients must be a snapshot: it is never re-read from the live aggregate.
func (d *Deliverer) Send(ctx context.Context, frame domain.Frame, audience event.Audience, recipients []*domain.Participant) int {
	targets := lo.Filter(recipients, func(p *domain.Participant, _ int) bool {
		return p.Session() != nil && !p.IsIgnoring(frame.Sender)
	})
	d.Offer(ctx, event.FromFrame(frame, audience, len(targets)))
	for _, p := range targets {
		p.Session().SendFrame(frame)
	}
	return len(targets)
}

// SendTo delivers frame to a single participant.
func (d *Deliverer) SendTo(ctx context.Context, frame domain.Frame, audience event.Audience, p *domain.Participant) int {
	return d.Send(ctx, frame, audience, []*domain.Participant{p})
}
