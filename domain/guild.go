package domain

import (
	"sync"

	"github.com/samber/lo"
)

type GuildMember struct {
	Participant *Participant
	Officer     bool
}

// Guild is a read-mostly roster of online members.
type Guild struct {
	ID   uint32
	Name string

	mu      sync.RWMutex
	members map[GUID]GuildMember
}

func NewGuild(id uint32, name string) *Guild {
	return &Guild{ID: id, Name: name, members: make(map[GUID]GuildMember)}
}

func (g *Guild) AddMember(p *Participant, officer bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members[p.ID] = GuildMember{Participant: p, Officer: officer}
}

func (g *Guild) RemoveMember(id GUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.members, id)
}

func (g *Guild) IsOfficer(id GUID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.members[id].Officer
}

// Members returns a snapshot of the online roster, restricted to officers when officersOnly is set.
func (g *Guild) Members(officersOnly bool) []*Participant {
	g.mu.RLock()
	defer g.mu.RUnlock()
	members := lo.Filter(lo.Values(g.members), func(m GuildMember, _ int) bool {
		return !officersOnly || m.Officer
	})
	return lo.Map(members, func(m GuildMember, _ int) *Participant {
		return m.Participant
	})
}
