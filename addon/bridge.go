// Package addon forwards opaque addon payloads between clients.
// Payloads skip language resolution and the security chain; they share delivery with the router.
package addon

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
	"world-chat/routing"
)

type Bridge struct {
	players   contract.PlayerDirectory
	guilds    contract.GuildDirectory
	deliverer *routing.Deliverer
	log       *slog.Logger
	now       func() time.Time
}

func NewBridge(players contract.PlayerDirectory, guilds contract.GuildDirectory, deliverer *routing.Deliverer, log *slog.Logger) *Bridge {
	return &Bridge{players: players, guilds: guilds, deliverer: deliverer, log: log, now: time.Now}
}

func (b *Bridge) WithClock(now func() time.Time) *Bridge {
	b.now = now
	return b
}

// Handle forwards env on behalf of sender and returns the number of recipients reached.
// Logging happens before the addon channel switch is consulted.
// Every failure is silent: the returned error is never a domain.Rejection.
func (b *Bridge) Handle(ctx context.Context, policy domain.Policy, sender *domain.Participant, env domain.AddonPayload) (int, error) {
	frame := domain.NewFrame(env.Type, domain.LangAddon, sender, env.Text, b.now()).WithAddonPrefix(env.Prefix)

	if policy.ChatLogAddon {
		if env.Text == "" {
			return 0, errors.ErrEmptyText
		}
		logged := frame
		logged.Kind = domain.KindAddon
		b.deliverer.Offer(ctx, event.FromFrame(logged, event.AudienceSelf, 0))
	}
	if !policy.AddonChannel {
		return 0, errors.ErrAddonChannelDisabled
	}

	switch env.Type {
	case domain.KindInstanceChat:
		group := sender.Group()
		if group == nil || !group.IsBattleground() {
			return 0, fmt.Errorf("%w: addon instance chat needs a battleground", errors.ErrNoGroup)
		}
		recipients := lo.Map(group.Members(), func(m domain.GroupMember, _ int) *domain.Participant {
			return m.Participant
		})
		return b.send(ctx, frame, event.AudienceGroup, recipients), nil
	case domain.KindGuild, domain.KindOfficer:
		guildID := sender.GuildID()
		if guildID == 0 {
			return 0, errors.ErrNoGuild
		}
		guild, ok := b.guilds.GuildByID(guildID)
		if !ok {
			return 0, fmt.Errorf("%w: %d", errors.ErrNoGuild, guildID)
		}
		frame = frame.WithTarget(guild.Name)
		return b.send(ctx, frame, event.AudienceGuild, guild.Members(env.Type == domain.KindOfficer)), nil
	case domain.KindWhisper:
		name, ok := domain.NormalizeName(env.Target)
		if !ok {
			return 0, fmt.Errorf("%w: %q", errors.ErrPlayerNotFound, env.Target)
		}
		receiver, err := b.players.FindByName(name)
		if err != nil || receiver == nil {
			return 0, fmt.Errorf("%w: %q", errors.ErrPlayerNotFound, env.Target)
		}
		frame = frame.WithTarget(receiver.Name)
		return b.send(ctx, frame, event.AudienceWhisper, []*domain.Participant{receiver}), nil
	case domain.KindParty, domain.KindRaid:
		// Raid payloads sent from a party reach the party.
		group := sender.Group()
		if group == nil || group.IsBattleground() {
			return 0, fmt.Errorf("%w: addon %s needs a group", errors.ErrNoGroup, env.Type)
		}
		recipients := lo.FilterMap(group.Members(), func(m domain.GroupMember, _ int) (*domain.Participant, bool) {
			p := m.Participant
			return p, p.ID != sender.ID && p.Group() == group
		})
		return b.send(ctx, frame, event.AudienceGroup, recipients), nil
	}
	b.log.Error("Unknown addon message type", "kind", env.Type, "sender", sender.ID)
	return 0, fmt.Errorf("%w: addon %s", errors.ErrUnroutableKind, env.Type)
}

func (b *Bridge) send(ctx context.Context, frame domain.Frame, audience event.Audience, recipients []*domain.Participant) int {
	listening := lo.Filter(recipients, func(p *domain.Participant, _ int) bool {
		return p.AcceptsAddonPrefix(frame.AddonPrefix)
	})
	return b.deliverer.Send(ctx, frame, audience, listening)
}
