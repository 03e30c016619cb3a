//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"world-chat/domain"
	"world-chat/domain/event"
	"world-chat/packet"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes audited chat events behind the fanout worker.
type EventSink interface {
	Consume(ctx context.Context, e event.ChatObserved) error
}

// ChatObserver is offered every frame before it is transmitted.
// An error never blocks delivery.
type ChatObserver interface {
	OnChat(ctx context.Context, e event.ChatObserved) error
}

// CommandDispatcher executes slash commands typed in chat.
type CommandDispatcher interface {
	TryExecute(ctx context.Context, sender *domain.Participant, text string) bool
}

// ProximityBroadcaster delivers a frame to every listener within radius of the sender.
type ProximityBroadcaster interface {
	Broadcast(ctx context.Context, sender *domain.Participant, frame domain.Frame, radius float64)
}

// CriteriaRecorder feeds achievement criteria progress.
type CriteriaRecorder interface {
	RecordEmote(ctx context.Context, sender *domain.Participant, emoteID uint32, target domain.GUID)
}

// PlayerDirectory resolves connected participants.
// FindByName expects a normalized name and returns errors.ErrPlayerNotFound or errors.ErrPlayerAmbiguous.
type PlayerDirectory interface {
	FindByName(name string) (*domain.Participant, error)
	FindByID(id domain.GUID) (*domain.Participant, bool)
}

type GuildDirectory interface {
	GuildByID(id uint32) (*domain.Guild, bool)
}

// ChannelDirectory resolves named channels per faction.
type ChannelDirectory interface {
	Channel(team domain.Team, name string, sender *domain.Participant) (*domain.Channel, bool)
}

// IOrchestrator is what transport adapters see of the chat runtime.
type IOrchestrator interface {
	Connect(info domain.ParticipantInfo, session domain.Session) (*domain.Participant, error)
	Disconnect(id domain.GUID)
	Submit(ctx context.Context, id domain.GUID, op packet.Opcode, payload []byte) error
}
