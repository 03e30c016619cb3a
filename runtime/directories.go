package runtime

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"

	"world-chat/domain"
)

// GuildRoster is an in-memory guild directory.
type GuildRoster struct {
	mu     sync.RWMutex
	guilds map[uint32]*domain.Guild
}

func NewGuildRoster() *GuildRoster {
	return &GuildRoster{guilds: make(map[uint32]*domain.Guild)}
}

func (r *GuildRoster) Register(g *domain.Guild) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guilds[g.ID] = g
}

func (r *GuildRoster) GuildByID(id uint32) (*domain.Guild, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.guilds[id]
	return g, ok
}

type channelKey struct {
	team domain.Team
	name string
}

// ChannelManager keeps one set of named channels per faction. Names are case-insensitive.
// With cross-faction chat enabled every faction shares the neutral set.
type ChannelManager struct {
	mu           sync.RWMutex
	channels     map[channelKey]*domain.Channel
	crossFaction bool
}

func NewChannelManager(crossFaction bool) *ChannelManager {
	return &ChannelManager{channels: make(map[channelKey]*domain.Channel), crossFaction: crossFaction}
}

func (m *ChannelManager) key(team domain.Team, name string) channelKey {
	if m.crossFaction {
		team = domain.TeamNeutral
	}
	return channelKey{team: team, name: strings.ToLower(name)}
}

// Open returns the named channel of team, creating it on first use.
func (m *ChannelManager) Open(team domain.Team, name string) *domain.Channel {
	k := m.key(team, name)
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.channels[k]; ok {
		return c
	}
	c := domain.NewChannel(name, k.team)
	m.channels[k] = c
	return c
}

func (m *ChannelManager) Channel(team domain.Team, name string, _ *domain.Participant) (*domain.Channel, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.channels[m.key(team, name)]
	return c, ok
}

// Position is a point on a map.
type Position struct {
	MapID uint32
	X, Y  float64
}

// ZoneBroadcaster delivers proximity chat to connected participants standing within range of the sender.
// Participants without a reported position stand at the origin of map 0.
type ZoneBroadcaster struct {
	mu        sync.RWMutex
	positions map[domain.GUID]Position
	registry  *Registry
	log       *slog.Logger
}

func NewZoneBroadcaster(registry *Registry, log *slog.Logger) *ZoneBroadcaster {
	return &ZoneBroadcaster{positions: make(map[domain.GUID]Position), registry: registry, log: log}
}

func (b *ZoneBroadcaster) Move(id domain.GUID, pos Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.positions[id] = pos
}

func (b *ZoneBroadcaster) Forget(id domain.GUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.positions, id)
}

func (b *ZoneBroadcaster) Broadcast(_ context.Context, sender *domain.Participant, frame domain.Frame, radius float64) {
	b.mu.RLock()
	origin := b.positions[sender.ID]
	b.mu.RUnlock()

	listeners := 0
	for _, p := range b.registry.Participants() {
		b.mu.RLock()
		pos := b.positions[p.ID]
		b.mu.RUnlock()
		if pos.MapID != origin.MapID || math.Hypot(pos.X-origin.X, pos.Y-origin.Y) > radius {
			continue
		}
		if p.IsIgnoring(sender.ID) {
			continue
		}
		if session := p.Session(); session != nil {
			session.SendFrame(frame)
			listeners++
		}
	}
	b.log.Debug("Proximity broadcast", "sender", sender.ID, "kind", frame.Kind, "radius", radius, "listeners", listeners)
}
