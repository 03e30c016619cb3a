// Package runtime wires the chat pipeline to connected sessions and supervised workers.
// It owns lifecycles and buffers, not chat rules.
package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"world-chat/contract"
	"world-chat/domain"
	"world-chat/domain/event"
	"world-chat/errors"
	"world-chat/moderation"
	"world-chat/packet"
	"world-chat/runtime/workers"
)

//go:embed censored/*
var censoredFolder embed.FS

// Settings tunes the runtime buffers and the moderation word list.
type Settings struct {
	EventBuffer     int
	SessionBuffer   int
	SinkTimeout     time.Duration
	MetricInterval  time.Duration
	CharReplacement rune
	CensoredWords   []string
	CommandPrefixes []string
}

type session struct {
	worker *workers.SessionWorker
	cancel context.CancelFunc
}

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	policy     domain.Policy
	settings   Settings
	supervisor contract.ISupervisor
	registry   *Registry
	guilds     *GuildRoster
	channels   *ChannelManager
	zone       *ZoneBroadcaster
	commands   contract.CommandDispatcher
	criteria   contract.CriteriaRecorder
	sinks      []contract.EventSink
	events     chan event.ChatObserved
	sessions   map[domain.GUID]*session
	pipeline   *Pipeline
	ctx        context.Context
	cancel     context.CancelFunc
	stopped    bool
	now        func() time.Time
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, policy domain.Policy, settings Settings) *Orchestrator {
	registry := NewRegistry()
	return &Orchestrator{
		log:        log,
		policy:     policy,
		settings:   settings,
		supervisor: supervisor,
		registry:   registry,
		guilds:     NewGuildRoster(),
		channels:   NewChannelManager(policy.CrossFactionChannel),
		zone:       NewZoneBroadcaster(registry, log),
		events:     make(chan event.ChatObserved, settings.EventBuffer),
		sessions:   make(map[domain.GUID]*session),
		now:        time.Now,
	}
}

// Add registers sinks fed by the fanout worker. Sinks added after Start are ignored.
func (o *Orchestrator) Add(sinks ...contract.EventSink) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
	return o
}

func (o *Orchestrator) WithCommands(commands contract.CommandDispatcher) *Orchestrator {
	o.commands = commands
	return o
}

func (o *Orchestrator) WithCriteria(criteria contract.CriteriaRecorder) *Orchestrator {
	o.criteria = criteria
	return o
}

func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

func (o *Orchestrator) Registry() *Registry { return o.registry }
func (o *Orchestrator) Guilds() *GuildRoster { return o.guilds }
func (o *Orchestrator) Channels() *ChannelManager { return o.channels }
func (o *Orchestrator) Zone() *ZoneBroadcaster { return o.zone }
func (o *Orchestrator) Events() chan<- event.ChatObserved { return o.events }

// Start builds the moderation automaton and the pipeline, then runs the supervised workers.
// It blocks until ctx is cancelled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	// Loading the word lists and building the automaton are the heavy parts.
	moderator, err := o.prepareModeration()
	if err != nil {
		return err
	}
	pipeline := NewPipeline(o.policy, moderator, Collaborators{
		Players:   o.registry,
		Guilds:    o.guilds,
		Channels:  o.channels,
		Proximity: o.zone,
		Observer:  NewChannelObserver(o.events, o.log),
		Commands:  o.commands,
		Criteria:  o.criteria,
	}, o.log).WithClock(o.now).WithCommandPrefixes(o.settings.CommandPrefixes...)

	runCtx, cancel := context.WithCancel(ctx)

	// 2. Critical Section (Short Lock)
	o.mu.Lock()
	if o.pipeline != nil {
		o.mu.Unlock()
		cancel()
		return fmt.Errorf("orchestrator already started")
	}
	if o.stopped {
		o.mu.Unlock()
		cancel()
		o.log.Info("Orchestrator stopped before start")
		return nil
	}
	o.pipeline = pipeline
	o.ctx, o.cancel = runCtx, cancel
	fanout := workers.NewEventFanout(o.log, o.events).
		Add(o.sinks...).
		WithSinkTimeout(o.settings.SinkTimeout)
	o.supervisor.Add(fanout)
	if o.settings.MetricInterval > 0 {
		o.supervisor.Add(workers.NewChannelCapacityWorker(o.log, o.settings.MetricInterval,
			workers.NamedChannel{Name: "chat_events", Channel: o.events}))
		o.supervisor.Add(workers.NewHealthMonitoringWorker(o.log, int32(os.Getpid()), o.settings.MetricInterval, o.registry.Len))
	}
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting orchestrator and all supervised workers", "sinks", len(o.sinks))
	o.supervisor.Run(runCtx)
	cancel()
	return nil
}

func (o *Orchestrator) prepareModeration() (*moderation.Moderator, error) {
	data, err := NewCensoredLoader(censoredFolder).LoadAll("censored", o.settings.CensoredWords...)
	if err != nil {
		return nil, err
	}
	o.log.Info("Censored word lists loaded",
		"languages", strings.Join(data.Languages, ","), "words", len(data.Words))
	return moderation.NewModerator(data.Words, o.settings.CharReplacement, o.log)
}

// Connect registers a participant and starts its session worker.
func (o *Orchestrator) Connect(info domain.ParticipantInfo, s domain.Session) (*domain.Participant, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ctx == nil || o.ctx.Err() != nil {
		return nil, fmt.Errorf("%w: runtime not running", errors.ErrSessionClosed)
	}

	p := domain.NewParticipant(info, s)
	if err := o.registry.Subscribe(p); err != nil {
		return nil, err
	}
	worker := workers.NewSessionWorker(p, o.settings.SessionBuffer, o.handle, o.log)
	sessionCtx, cancel := context.WithCancel(o.ctx)
	o.sessions[p.ID] = &session{worker: worker, cancel: cancel}
	o.supervisor.Start(sessionCtx, worker)

	o.log.Info("Participant connected", "id", p.ID, "name", p.Name, "online", o.registry.Len())
	return p, nil
}

// Disconnect stops the session worker and forgets the participant. Unknown ids are ignored.
func (o *Orchestrator) Disconnect(id domain.GUID) {
	o.mu.Lock()
	s, ok := o.sessions[id]
	delete(o.sessions, id)
	o.mu.Unlock()
	if !ok {
		return
	}
	s.cancel()
	o.registry.Unsubscribe(id)
	o.zone.Forget(id)
	o.log.Info("Participant disconnected", "id", id, "online", o.registry.Len())
}

// Submit queues a packet on the session of id without blocking.
func (o *Orchestrator) Submit(_ context.Context, id domain.GUID, op packet.Opcode, payload []byte) error {
	o.mu.Lock()
	s, ok := o.sessions[id]
	o.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrUnknownSession, id)
	}
	return s.worker.Submit(workers.Inbound{Opcode: op, Payload: payload})
}

func (o *Orchestrator) handle(ctx context.Context, sender *domain.Participant, op packet.Opcode, payload []byte) {
	outcome := o.pipeline.Handle(ctx, sender, op, payload)
	o.log.Debug("Chat packet handled", "sender", sender.ID, "opcode", op, "outcome", outcome)
	if outcome == OutcomeKicked {
		o.Disconnect(sender.ID)
	}
}

// Stop cancels every session and worker. Start returns once they are all done.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.mu.Lock()
	o.stopped = true
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()
	o.supervisor.Stop()
}
