// Package routing resolves the audience of a chat message and delivers it.
package routing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"world-chat/contract"
	"world-chat/domain"
	"world-chat/domain/event"
	"world-chat/errors"
)

// Message is an envelope that went through language resolution and the security chain.
type Message struct {
	Envelope domain.Envelope
	Language domain.LanguageID
	Text     string
}

type Router struct {
	players   contract.PlayerDirectory
	guilds    contract.GuildDirectory
	channels  contract.ChannelDirectory
	proximity contract.ProximityBroadcaster
	deliverer *Deliverer
	log       *slog.Logger
	now       func() time.Time
}

func NewRouter(players contract.PlayerDirectory, guilds contract.GuildDirectory, channels contract.ChannelDirectory,
	proximity contract.ProximityBroadcaster, deliverer *Deliverer, log *slog.Logger) *Router {
	return &Router{
		players:   players,
		guilds:    guilds,
		channels:  channels,
		proximity: proximity,
		deliverer: deliverer,
		log:       log,
		now:       time.Now,
	}
}

// WithClock replaces the clock stamping outbound frames.
func (r *Router) WithClock(now func() time.Time) *Router {
	r.now = now
	return r
}

// Route delivers msg on behalf of sender and returns the number of recipients reached.
// Proximity deliveries report one recipient: the broadcaster owns the listener set.
// Errors that owe the sender a notice are domain.Rejection values; any other error is a silent drop.
func (r *Router) Route(ctx context.Context, policy domain.Policy, sender *domain.Participant, msg Message) (int, error) {
	switch env := msg.Envelope.(type) {
	case domain.Speech:
		return r.routeSpeech(ctx, policy, sender, env.Type, msg)
	case domain.Emote:
		return r.routeProximity(ctx, policy, sender, domain.KindEmote, domain.LangUniversal, msg.Text, policy.ListenRangeTextEmote)
	case domain.Whisper:
		return r.routeWhisper(ctx, policy, sender, env.Receiver, msg)
	case domain.ChannelPost:
		return r.routeChannel(ctx, policy, sender, env.Channel, msg)
	}
	return 0, fmt.Errorf("%w: %s", errors.ErrUnroutableKind, msg.Envelope.Kind())
}

func (r *Router) routeSpeech(ctx context.Context, policy domain.Policy, sender *domain.Participant, kind domain.Kind, msg Message) (int, error) {
	switch kind {
	case domain.KindSay:
		return r.routeProximity(ctx, policy, sender, kind, msg.Language, msg.Text, policy.ListenRangeSay)
	case domain.KindYell:
		return r.routeProximity(ctx, policy, sender, kind, msg.Language, msg.Text, policy.ListenRangeYell)
	case domain.KindParty, domain.KindPartyLeader:
		return r.routeParty(ctx, sender, msg)
	case domain.KindRaid, domain.KindRaidLeader:
		return r.routeRaid(ctx, sender, msg)
	case domain.KindRaidWarning:
		return r.routeRaidWarning(ctx, sender, msg)
	case domain.KindInstanceChat, domain.KindInstanceChatLeader:
		return r.routeInstance(ctx, sender, msg)
	case domain.KindGuild, domain.KindOfficer:
		return r.routeGuild(ctx, sender, kind, msg)
	}
	return 0, fmt.Errorf("%w: %s", errors.ErrUnroutableKind, kind)
}

func (r *Router) routeProximity(ctx context.Context, policy domain.Policy, sender *domain.Participant,
	kind domain.Kind, language domain.LanguageID, text string, radius float64) (int, error) {
	if sender.Level() < policy.SayLevelReq {
		return 0, levelRequirement(kind, policy.SayLevelReq)
	}
	frame := domain.NewFrame(kind, language, sender, text, r.now())
	r.deliverer.Offer(ctx, event.FromFrame(frame, event.AudienceProximity, 1))
	r.proximity.Broadcast(ctx, sender, frame, radius)
	return 1, nil
}

func (r *Router) routeWhisper(ctx context.Context, policy domain.Policy, sender *domain.Participant, receiverName string, msg Message) (int, error) {
	if sender.Level() < policy.WhisperLevelReq {
		return 0, levelRequirement(domain.KindWhisper, policy.WhisperLevelReq)
	}
	name, ok := domain.NormalizeName(receiverName)
	if !ok {
		return 0, domain.Reject(fmt.Errorf("%w: %q", errors.ErrPlayerNotFound, receiverName), domain.PlayerNotFound(receiverName))
	}
	receiver, err := r.players.FindByName(name)
	if errors.Is(err, errors.ErrPlayerAmbiguous) {
		return 0, domain.Reject(err, domain.PlayerAmbiguous(receiverName))
	}
	if err != nil || receiver == nil {
		return 0, domain.Reject(fmt.Errorf("%w: %q", errors.ErrPlayerNotFound, receiverName), domain.PlayerNotFound(receiverName))
	}

	senderIsPlayer := sender.IsPlayerAccount()
	receiverIsPlayer := receiver.IsPlayerAccount()
	// Staff that do not accept whispers look offline to players.
	if senderIsPlayer && !receiverIsPlayer && !receiver.AcceptsWhispers() && !receiver.IsWhitelisted(sender.ID) {
		return 0, domain.Reject(fmt.Errorf("%w: %s", errors.ErrWhispersBlocked, receiver.Name), domain.PlayerNotFound(receiverName))
	}
	if !policy.CrossFactionChat && senderIsPlayer && receiverIsPlayer && sender.Team != receiver.Team {
		return 0, domain.Reject(errors.ErrWrongFaction, domain.WrongFaction())
	}
	if !receiver.IsGameMaster() {
		if sender.IsSilenced() {
			return 0, domain.Reject(errors.ErrSilenced, domain.GMSilenced(sender.Name))
		}
		if receiver.IsSilenced() {
			return 0, domain.Reject(errors.ErrSilenced, domain.GMSilenced(receiver.Name))
		}
	}
	if !senderIsPlayer && !sender.AcceptsWhispers() && !sender.IsWhitelisted(receiver.ID) {
		sender.AddToWhitelist(receiver.ID)
	}

	at := r.now()
	frame := domain.NewFrame(domain.KindWhisper, msg.Language, sender, msg.Text, at).WithTarget(receiver.Name)
	delivered := r.deliverer.SendTo(ctx, frame, event.AudienceWhisper, receiver)

	// Idle receivers answer with their away message, only for whispers that reached them.
	if delivered > 0 {
		idle := receiver.Idle()
		switch {
		case idle.AFK:
			r.deliverer.SendTo(ctx, domain.NewFrame(domain.KindAFK, domain.LangUniversal, receiver, idle.AFKMessage, at), event.AudienceWhisper, sender)
		case idle.DND:
			r.deliverer.SendTo(ctx, domain.NewFrame(domain.KindDND, domain.LangUniversal, receiver, idle.DNDMessage, at), event.AudienceWhisper, sender)
		}
	}
	return delivered, nil
}

// partyGroup returns the group party and raid chat are addressed to.
// The group kept from before a battleground wins over the current one.
func partyGroup(sender *domain.Participant) (*domain.Group, error) {
	group := sender.OriginalGroup()
	if group == nil {
		group = sender.Group()
	}
	if group == nil {
		return nil, fmt.Errorf("%w: not in a group", errors.ErrNoGroup)
	}
	if group.IsBattleground() {
		return nil, fmt.Errorf("%w: battleground group", errors.ErrNoGroup)
	}
	return group, nil
}

func (r *Router) routeParty(ctx context.Context, sender *domain.Participant, msg Message) (int, error) {
	group, err := partyGroup(sender)
	if err != nil {
		return 0, err
	}
	kind := domain.KindParty
	if group.IsLeader(sender.ID) {
		kind = domain.KindPartyLeader
	}
	subGroup, _ := group.SubGroupOf(sender.ID)
	recipients := lo.FilterMap(group.Members(), func(m domain.GroupMember, _ int) (*domain.Participant, bool) {
		return m.Participant, m.SubGroup == subGroup
	})
	frame := domain.NewFrame(kind, msg.Language, sender, msg.Text, r.now())
	return r.deliverer.Send(ctx, frame, event.AudienceGroup, recipients), nil
}

func (r *Router) routeRaid(ctx context.Context, sender *domain.Participant, msg Message) (int, error) {
	group, err := partyGroup(sender)
	if err != nil {
		return 0, err
	}
	if !group.IsRaid() {
		return 0, fmt.Errorf("%w: not a raid", errors.ErrNoGroup)
	}
	kind := domain.KindRaid
	if group.IsLeader(sender.ID) {
		kind = domain.KindRaidLeader
	}
	frame := domain.NewFrame(kind, msg.Language, sender, msg.Text, r.now())
	return r.deliverer.Send(ctx, frame, event.AudienceGroup, members(group)), nil
}

func (r *Router) routeRaidWarning(ctx context.Context, sender *domain.Participant, msg Message) (int, error) {
	group := sender.Group()
	if group == nil || !group.IsRaid() || group.IsBattleground() {
		return 0, fmt.Errorf("%w: raid warning needs a raid", errors.ErrNoGroup)
	}
	if !group.IsLeader(sender.ID) && !group.IsAssistant(sender.ID) && !group.EveryoneIsAssistant() {
		return 0, errors.ErrNotRaidAssistant
	}
	frame := domain.NewFrame(domain.KindRaidWarning, msg.Language, sender, msg.Text, r.now())
	return r.deliverer.Send(ctx, frame, event.AudienceGroup, members(group)), nil
}

// routeInstance uses the current group only: battleground raids never live in the original group.
func (r *Router) routeInstance(ctx context.Context, sender *domain.Participant, msg Message) (int, error) {
	group := sender.Group()
	if group == nil {
		return 0, fmt.Errorf("%w: not in a group", errors.ErrNoGroup)
	}
	leader := group.IsLeader(sender.ID)
	var kind domain.Kind
	switch {
	case !group.IsBattleground() && leader:
		kind = domain.KindRaidLeader
	case !group.IsBattleground():
		kind = domain.KindRaid
	case leader:
		kind = domain.KindInstanceChatLeader
	default:
		kind = domain.KindInstanceChat
	}
	frame := domain.NewFrame(kind, msg.Language, sender, msg.Text, r.now())
	return r.deliverer.Send(ctx, frame, event.AudienceGroup, members(group)), nil
}

func (r *Router) routeGuild(ctx context.Context, sender *domain.Participant, kind domain.Kind, msg Message) (int, error) {
	guildID := sender.GuildID()
	if guildID == 0 {
		return 0, errors.ErrNoGuild
	}
	guild, ok := r.guilds.GuildByID(guildID)
	if !ok {
		return 0, fmt.Errorf("%w: %d", errors.ErrNoGuild, guildID)
	}
	language := domain.LangUniversal
	if msg.Language == domain.LangAddon {
		language = domain.LangAddon
	}
	frame := domain.NewFrame(kind, language, sender, msg.Text, r.now()).WithTarget(guild.Name)
	return r.deliverer.Send(ctx, frame, event.AudienceGuild, guild.Members(kind == domain.KindOfficer)), nil
}

func (r *Router) routeChannel(ctx context.Context, policy domain.Policy, sender *domain.Participant, name string, msg Message) (int, error) {
	if sender.IsPlayerAccount() && sender.Level() < policy.ChannelLevelReq {
		return 0, levelRequirement(domain.KindChannel, policy.ChannelLevelReq)
	}
	channel, ok := r.channels.Channel(sender.Team, name, sender)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errors.ErrNoChannel, name)
	}
	if notice := channel.Check(sender); notice.Code != domain.NoticeNone {
		return 0, channelRejection(notice)
	}
	frame := domain.NewFrame(domain.KindChannel, msg.Language, sender, msg.Text, r.now()).WithTarget(channel.Name)
	r.deliverer.Offer(ctx, event.FromFrame(frame, event.AudienceChannel, 0))
	delivered, notice := channel.Say(sender, frame)
	if notice.Code != domain.NoticeNone {
		return 0, channelRejection(notice)
	}
	return delivered, nil
}

func members(group *domain.Group) []*domain.Participant {
	return lo.Map(group.Members(), func(m domain.GroupMember, _ int) *domain.Participant {
		return m.Participant
	})
}

func levelRequirement(kind domain.Kind, level uint8) error {
	return domain.Reject(fmt.Errorf("%w: %s needs level %d", errors.ErrLevelRequirement, kind, level), domain.LevelRequirement(kind, level))
}

func channelRejection(notice domain.Notice) error {
	if notice.Code == domain.NoticeChannelMuted {
		return domain.Reject(fmt.Errorf("%w: %s", errors.ErrChannelMuted, notice.Name), notice)
	}
	return domain.Reject(fmt.Errorf("%w: %s", errors.ErrNotChannelMember, notice.Name), notice)
}
