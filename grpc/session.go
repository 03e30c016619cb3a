package grpc

import (
	"log/slog"
	"sync"

	"world-chat/domain"
	"world-chat/packet"
	"world-chat/runtime"
)

type outbound struct {
	op      packet.Opcode
	payload []byte
}

// Session is the gateway side of a connected participant.
// The pipeline writes into it and the Listen stream drains it.
type Session struct {
	out      chan outbound
	kicked   chan string
	once     sync.Once
	notifier *runtime.Notifier
	log      *slog.Logger
}

func NewSession(bufferSize int, notifier *runtime.Notifier, log *slog.Logger) *Session {
	return &Session{
		out:      make(chan outbound, bufferSize),
		kicked:   make(chan string, 1),
		notifier: notifier,
		log:      log,
	}
}

func (s *Session) SendFrame(frame domain.Frame) {
	op, payload := packet.EncodeFrame(frame)
	s.push(outbound{op: op, payload: payload})
}

func (s *Session) SendNotice(notice domain.Notice) {
	op, payload, err := packet.EncodeNotice(notice, s.notifier.Text(notice))
	if err != nil {
		s.log.Warn("Notice dropped", "code", notice.Code, "error", err)
		return
	}
	s.push(outbound{op: op, payload: payload})
}

// Kick only keeps the first reason.
func (s *Session) Kick(reason string) {
	s.once.Do(func() { s.kicked <- reason })
}

// push never blocks the pipeline: a slow client loses packets.
func (s *Session) push(p outbound) {
	select {
	case s.out <- p:
	default:
		s.log.Warn("Client too slow, packet dropped", "opcode", p.op)
	}
}
