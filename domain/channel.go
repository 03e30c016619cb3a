package domain

import (
	"sync"

	"github.com/samber/lo"
)

// ChannelMember carries the per-member moderation state of a named channel.
type ChannelMember struct {
	Participant *Participant
	Moderator   bool
	Muted       bool
}

// Channel is a named chat channel. It owns membership checks and delivery.
type Channel struct {
	Name string
	Team Team

	mu      sync.RWMutex
	members map[GUID]ChannelMember
	order   []GUID
}

func NewChannel(name string, team Team) *Channel {
	return &Channel{Name: name, Team: team, members: make(map[GUID]ChannelMember)}
}

func (c *Channel) Join(p *Participant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.members[p.ID]; ok {
		return
	}
	c.members[p.ID] = ChannelMember{Participant: p}
	c.order = append(c.order, p.ID)
}

func (c *Channel) Leave(id GUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.members, id)
	c.order = lo.Without(c.order, id)
}

func (c *Channel) IsMember(id GUID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.members[id]
	return ok
}

func (c *Channel) SetMuted(id GUID, muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.members[id]; ok {
		m.Muted = muted
		c.members[id] = m
	}
}

func (c *Channel) SetModerator(id GUID, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.members[id]; ok {
		m.Moderator = on
		c.members[id] = m
	}
}

// Check returns a non-zero notice when sender may not post to the channel.
func (c *Channel) Check(sender *Participant) Notice {
	_, notice := c.recipients(sender)
	return notice
}

// Say delivers frame to every member, in join order, after checking that the sender may post.
// Members ignoring the sender are skipped. The returned notice is non-zero when the sender was refused.
func (c *Channel) Say(sender *Participant, frame Frame) (int, Notice) {
	recipients, notice := c.recipients(sender)
	if notice.Code != NoticeNone {
		return 0, notice
	}
	delivered := 0
	for _, p := range recipients {
		if p.IsIgnoring(sender.ID) {
			continue
		}
		if session := p.Session(); session != nil {
			session.SendFrame(frame)
			delivered++
		}
	}
	return delivered, Notice{}
}

func (c *Channel) recipients(sender *Participant) ([]*Participant, Notice) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	member, ok := c.members[sender.ID]
	if !ok {
		return nil, NotChannelMember(c.Name)
	}
	if member.Muted && !member.Moderator && sender.IsPlayerAccount() {
		return nil, ChannelMuted(c.Name)
	}
	return lo.Map(c.order, func(id GUID, _ int) *Participant {
		return c.members[id].Participant
	}), Notice{}
}
