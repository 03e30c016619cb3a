package runtime

import (
	"fmt"
	"sync"

	"github.com/samber/lo"

	"world-chat/domain"
	"world-chat/errors"
)

type Set map[domain.GUID]struct{}

// Registry is the directory of connected participants.
// Names are indexed in their normalized form; two characters sharing a name make it ambiguous.
type Registry struct {
	mu      sync.RWMutex
	players map[domain.GUID]*domain.Participant
	names   map[string]Set
}

func NewRegistry() *Registry {
	return &Registry{
		players: make(map[domain.GUID]*domain.Participant),
		names:   make(map[string]Set),
	}
}

// Subscribe registers a connected participant under its id and its normalized name.
func (r *Registry) Subscribe(p *domain.Participant) error {
	name, ok := domain.NormalizeName(p.Name)
	if !ok {
		return fmt.Errorf("%w: invalid name %q", errors.ErrInvalidPayload, p.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; exists {
		return fmt.Errorf("%w: %d", errors.ErrAlreadyOnline, p.ID)
	}
	r.players[p.ID] = p
	if _, ok := r.names[name]; !ok {
		r.names[name] = make(Set)
	}
	r.names[name][p.ID] = struct{}{}
	return nil
}

// Unsubscribe forgets a participant. Empty name entries are removed.
func (r *Registry) Unsubscribe(id domain.GUID) (*domain.Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok {
		return nil, false
	}
	delete(r.players, id)
	name, _ := domain.NormalizeName(p.Name)
	if ids, ok := r.names[name]; ok {
		delete(ids, id)
		if len(ids) == 0 {
			delete(r.names, name)
		}
	}
	return p, true
}

// FindByName expects a normalized name.
func (r *Registry) FindByName(name string) (*domain.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.names[name]
	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("%w: %q", errors.ErrPlayerNotFound, name)
	case 1:
		for id := range ids {
			return r.players[id], nil
		}
	}
	return nil, fmt.Errorf("%w: %q matches %d players", errors.ErrPlayerAmbiguous, name, len(ids))
}

func (r *Registry) FindByID(id domain.GUID) (*domain.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	return p, ok
}

// Participants returns a snapshot of every connected participant.
func (r *Registry) Participants() []*domain.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.players)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
