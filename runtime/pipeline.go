package runtime

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"world-chat/addon"
	"world-chat/contract"
	"world-chat/domain"
	"world-chat/domain/event"
	"world-chat/errors"
	"world-chat/language"
	"world-chat/moderation"
	"world-chat/packet"
	"world-chat/presence"
	"world-chat/routing"
)

// Outcome is how a pipeline pass ended. Every pass ends in exactly one outcome.
type Outcome uint8

const (
	OutcomeDropped Outcome = iota
	OutcomeDelivered
	OutcomeNotified
	OutcomeKicked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeNotified:
		return "notified"
	case OutcomeKicked:
		return "kicked"
	default:
		return "dropped"
	}
}

// Collaborators are the systems the pipeline consults but does not own.
// Observer, Commands and Criteria may be nil.
type Collaborators struct {
	Players   contract.PlayerDirectory
	Guilds    contract.GuildDirectory
	Channels  contract.ChannelDirectory
	Proximity contract.ProximityBroadcaster
	Observer  contract.ChatObserver
	Commands  contract.CommandDispatcher
	Criteria  contract.CriteriaRecorder
}

// Pipeline is the single entry point for inbound chat packets.
// A pipeline never runs twice at once for the same sender: the session worker serializes calls.
type Pipeline struct {
	policy    domain.Policy
	prefixes  []string
	emotes    domain.TextEmoteTable
	resolver  *language.Resolver
	chain     *moderation.Chain
	router    *routing.Router
	bridge    *addon.Bridge
	deliverer *routing.Deliverer
	deps      Collaborators
	log       *slog.Logger
	now       func() time.Time
}

func NewPipeline(policy domain.Policy, moderator *moderation.Moderator, deps Collaborators, log *slog.Logger) *Pipeline {
	deliverer := routing.NewDeliverer(deps.Observer, log)
	return &Pipeline{
		policy:    policy,
		emotes:    domain.DefaultTextEmotes(),
		resolver:  language.NewResolver(domain.DefaultLanguages()),
		chain:     moderation.NewChain(moderator, log),
		router:    routing.NewRouter(deps.Players, deps.Guilds, deps.Channels, deps.Proximity, deliverer, log),
		bridge:    addon.NewBridge(deps.Players, deps.Guilds, deliverer, log),
		deliverer: deliverer,
		deps:      deps,
		log:       log,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock of the pipeline and of every stage.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	p.chain.WithClock(now)
	p.router.WithClock(now)
	p.bridge.WithClock(now)
	return p
}

// WithCommandPrefixes restricts command dispatch to text starting with one of prefixes.
// Without prefixes every text is offered to the dispatcher.
func (p *Pipeline) WithCommandPrefixes(prefixes ...string) *Pipeline {
	p.prefixes = prefixes
	return p
}

func (p *Pipeline) WithTextEmotes(emotes domain.TextEmoteTable) *Pipeline {
	p.emotes = emotes
	return p
}

// Handle dispatches a packet to the entry point of its opcode family.
func (p *Pipeline) Handle(ctx context.Context, sender *domain.Participant, op packet.Opcode, payload []byte) Outcome {
	switch packet.FamilyOf(op) {
	case packet.FamilyChat:
		return p.HandleChat(ctx, sender, op, payload)
	case packet.FamilyAddon:
		return p.HandleAddon(ctx, sender, op, payload)
	case packet.FamilyEmote:
		return p.HandleEmote(ctx, sender, payload)
	case packet.FamilyTextEmote:
		return p.HandleTextEmote(ctx, sender, payload)
	case packet.FamilyChatIgnored:
		return p.HandleChatIgnored(ctx, sender, payload)
	}
	return p.malformed(sender, op, payload, fmt.Errorf("%w: %s", errors.ErrUnknownOpcode, op))
}

// HandleChat runs a chat packet through decode, language resolution, the security chain and routing.
func (p *Pipeline) HandleChat(ctx context.Context, sender *domain.Participant, op packet.Opcode, payload []byte) Outcome {
	env, err := packet.Decode(op, payload)
	if err != nil {
		return p.malformed(sender, op, payload, err)
	}

	if env.Kind().IsPresence() {
		state, err := presence.Toggle(p.policy, sender, env.Kind(), env.Body())
		if err != nil {
			return p.finish(sender, err)
		}
		p.log.Debug("Presence changed", "player", sender.Name, "afk", state.AFK, "dnd", state.DND)
		return OutcomeDelivered
	}

	kind := env.Kind()
	lang, err := p.resolver.Resolve(p.policy, sender, kind, domain.LanguageOf(env))
	if err != nil {
		return p.finish(sender, err)
	}

	text := env.Body()
	if lang == domain.LangAddon && p.policy.ChatLogAddon && text != "" {
		logged := domain.NewFrame(domain.KindAddon, lang, sender, text, p.now())
		p.deliverer.Offer(ctx, event.FromFrame(logged, event.AudienceSelf, 0))
	}
	if text == "" {
		return p.finish(sender, errors.ErrEmptyText)
	}
	if p.isCommand(ctx, sender, text) {
		return p.finish(sender, errors.ErrHandledAsCommand)
	}

	filtered, err := p.chain.Filter(p.policy, sender, kind, lang, text)
	if err != nil {
		return p.finish(sender, err)
	}
	if lang == domain.LangAddon && !p.policy.AddonChannel {
		return p.finish(sender, errors.ErrAddonChannelDisabled)
	}

	delivered, err := p.router.Route(ctx, p.policy, sender, routing.Message{Envelope: env, Language: lang, Text: filtered})
	if err != nil {
		return p.finish(sender, err)
	}
	sender.UpdateSpeakTime(p.now())
	p.log.Debug("Chat message delivered", "player", sender.Name, "kind", kind, "recipients", delivered)
	return OutcomeDelivered
}

// HandleAddon forwards an addon packet through the bridge.
func (p *Pipeline) HandleAddon(ctx context.Context, sender *domain.Participant, op packet.Opcode, payload []byte) Outcome {
	env, err := packet.DecodeAddon(op, payload)
	if err != nil {
		return p.malformed(sender, op, payload, err)
	}
	_, err = p.bridge.Handle(ctx, p.policy, sender, env)
	return p.finish(sender, err)
}

// HandleEmote plays an animation for the listeners around the sender.
func (p *Pipeline) HandleEmote(ctx context.Context, sender *domain.Participant, payload []byte) Outcome {
	id, err := packet.DecodeEmote(payload)
	if err != nil {
		return p.malformed(sender, packet.CMsgEmote, payload, err)
	}
	now := p.now()
	if err := p.checkEmoter(sender, now); err != nil {
		return p.finish(sender, err)
	}
	sender.UpdateSpeakTime(now)

	frame := domain.NewFrame(domain.KindEmote, domain.LangUniversal, sender, "", now).WithEmote(id, 0)
	p.broadcast(ctx, sender, frame)
	return OutcomeDelivered
}

// HandleTextEmote shows a catalog emote such as /wave to the listeners around the sender.
func (p *Pipeline) HandleTextEmote(ctx context.Context, sender *domain.Participant, payload []byte) Outcome {
	req, err := packet.DecodeTextEmote(payload)
	if err != nil {
		return p.malformed(sender, packet.CMsgTextEmote, payload, err)
	}
	now := p.now()
	if err := p.checkEmoter(sender, now); err != nil {
		return p.finish(sender, err)
	}
	sender.UpdateSpeakTime(now)

	emote, ok := p.emotes.Lookup(req.TextEmote)
	if !ok {
		return p.finish(sender, fmt.Errorf("%w: %d", errors.ErrUnknownTextEmote, req.TextEmote))
	}
	frame := domain.NewFrame(domain.KindTextEmote, domain.LangUniversal, sender, emote.Name, now).WithEmote(req.TextEmote, req.Target)
	if req.Target != 0 {
		if target, found := p.deps.Players.FindByID(req.Target); found {
			frame = frame.WithTarget(target.Name)
		}
	}
	p.broadcast(ctx, sender, frame)
	if p.deps.Criteria != nil {
		p.deps.Criteria.RecordEmote(ctx, sender, req.TextEmote, req.Target)
	}
	return OutcomeDelivered
}

// HandleChatIgnored tells the ignored author that sender ignored their message.
func (p *Pipeline) HandleChatIgnored(ctx context.Context, sender *domain.Participant, payload []byte) Outcome {
	req, err := packet.DecodeChatIgnored(payload)
	if err != nil {
		return p.malformed(sender, packet.CMsgChatIgnored, payload, err)
	}
	author, ok := p.deps.Players.FindByID(req.Ignored)
	if !ok {
		return p.finish(sender, fmt.Errorf("%w: %d", errors.ErrPlayerNotFound, req.Ignored))
	}
	frame := domain.NewFrame(domain.KindIgnored, domain.LangUniversal, sender, "", p.now())
	if p.deliverer.SendTo(ctx, frame, event.AudienceWhisper, author) == 0 {
		return OutcomeDropped
	}
	return OutcomeDelivered
}

func (p *Pipeline) isCommand(ctx context.Context, sender *domain.Participant, text string) bool {
	if p.deps.Commands == nil {
		return false
	}
	if len(p.prefixes) > 0 && !lo.SomeBy(p.prefixes, func(prefix string) bool { return strings.HasPrefix(text, prefix) }) {
		return false
	}
	return p.deps.Commands.TryExecute(ctx, sender, text)
}

func (p *Pipeline) checkEmoter(sender *domain.Participant, now time.Time) error {
	if !sender.IsAlive() {
		return errors.ErrDeadSender
	}
	if !sender.CanSpeak(now) {
		remaining := sender.MuteRemaining(now)
		return domain.Reject(fmt.Errorf("%w: %s left", errors.ErrMuted, remaining), domain.WaitBeforeSpeaking(remaining))
	}
	return nil
}

func (p *Pipeline) broadcast(ctx context.Context, sender *domain.Participant, frame domain.Frame) {
	p.deliverer.Offer(ctx, event.FromFrame(frame, event.AudienceProximity, 1))
	p.deps.Proximity.Broadcast(ctx, sender, frame, p.policy.ListenRangeTextEmote)
}

func (p *Pipeline) malformed(sender *domain.Participant, op packet.Opcode, payload []byte, err error) Outcome {
	p.log.Error("Malformed chat packet", "player", sender.Name, "guid", sender.ID, "opcode", op,
		"payload", hex.EncodeToString(payload), "error", err)
	return OutcomeDropped
}

// finish turns a stage error into an outcome. It is the only place where errors become notices.
func (p *Pipeline) finish(sender *domain.Participant, err error) Outcome {
	if err == nil {
		return OutcomeDelivered
	}
	if errors.Is(err, errors.ErrSessionKicked) {
		p.log.Warn("Session kicked", "player", sender.Name, "guid", sender.ID, "error", err)
		return OutcomeKicked
	}
	var rejection domain.Rejection
	if errors.As(err, &rejection) {
		if session := sender.Session(); session != nil {
			session.SendNotice(rejection.Notice)
		}
		p.log.Debug("Chat message refused", "player", sender.Name, "notice", rejection.Notice.Code, "error", err)
		return OutcomeNotified
	}
	switch category := errors.CategoryOf(err); category {
	case errors.CategoryProtocol:
		p.log.Error("Chat message dropped", "player", sender.Name, "category", category, "error", err)
	case errors.CategoryPolicy, errors.CategoryIneligible:
		p.log.Debug("Chat message dropped", "player", sender.Name, "category", category, "error", err)
	default:
		p.log.Warn("Chat message dropped", "player", sender.Name, "error", err)
	}
	return OutcomeDropped
}
