package domain

import (
	"sync"

	"github.com/samber/lo"
)

type GroupFlags uint8

const (
	GroupFlagRaid GroupFlags = 1 << iota
	GroupFlagBattleground
	GroupFlagEveryoneAssistant
)

// GroupMember is a member entry with its raid sub-group.
type GroupMember struct {
	Participant *Participant
	SubGroup    uint8
}

// Group is a party, raid or battleground group. Membership is owned by the group manager;
// readers take a point-in-time copy with Members before delivering.
type Group struct {
	mu         sync.RWMutex
	leader     GUID
	flags      GroupFlags
	members    []GroupMember
	assistants map[GUID]struct{}
}

func NewGroup(leader *Participant, flags GroupFlags) *Group {
	g := &Group{
		leader:     leader.ID,
		flags:      flags,
		assistants: make(map[GUID]struct{}),
	}
	g.members = append(g.members, GroupMember{Participant: leader})
	return g
}

// AddMember appends p to the given sub-group. Adding an existing member moves it.
func (g *Group) AddMember(p *Participant, subGroup uint8) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.members {
		if g.members[i].Participant.ID == p.ID {
			g.members[i].SubGroup = subGroup
			return
		}
	}
	g.members = append(g.members, GroupMember{Participant: p, SubGroup: subGroup})
}

func (g *Group) RemoveMember(id GUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members = lo.Filter(g.members, func(m GroupMember, _ int) bool {
		return m.Participant.ID != id
	})
	delete(g.assistants, id)
}

// Members returns a snapshot of the member list in join order.
func (g *Group) Members() []GroupMember {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]GroupMember, len(g.members))
	copy(out, g.members)
	return out
}

// SubGroupOf returns the sub-group of a member.
func (g *Group) SubGroupOf(id GUID) (uint8, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, m := range g.members {
		if m.Participant.ID == id {
			return m.SubGroup, true
		}
	}
	return 0, false
}

func (g *Group) IsLeader(id GUID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.leader == id
}

func (g *Group) SetLeader(id GUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leader = id
}

func (g *Group) IsAssistant(id GUID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.assistants[id]
	return ok
}

func (g *Group) SetAssistant(id GUID, on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if on {
		g.assistants[id] = struct{}{}
		return
	}
	delete(g.assistants, id)
}

func (g *Group) Flags() GroupFlags {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.flags
}

func (g *Group) SetFlags(flags GroupFlags) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.flags = flags
}

func (g *Group) IsRaid() bool {
	return g.Flags()&GroupFlagRaid != 0
}

func (g *Group) IsBattleground() bool {
	return g.Flags()&GroupFlagBattleground != 0
}

func (g *Group) EveryoneIsAssistant() bool {
	return g.Flags()&GroupFlagEveryoneAssistant != 0
}
