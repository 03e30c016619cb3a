// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
//
//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_session.go -package=mocks
package domain

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type GUID uint64

type Team uint8

const (
	TeamNeutral Team = iota
	TeamAlliance
	TeamHorde
)

// SecurityTier is the account privilege level assigned by the authentication layer.
type SecurityTier uint8

const (
	SecPlayer SecurityTier = iota
	SecModerator
	SecGameMaster
	SecAdministrator
	SecConsole
)

// IsPlayer reports whether the tier is an unprivileged account.
func (s SecurityTier) IsPlayer() bool {
	return s == SecPlayer
}

// Session is the connection owning a participant.
// Implementations must not block: they buffer or drop.
type Session interface {
	SendFrame(frame Frame)
	SendNotice(notice Notice)
	Kick(reason string)
}

// IdleState holds the AFK/DND flags. AFK and DND are never both set.
type IdleState struct {
	AFK        bool
	AFKMessage string
	DND        bool
	DNDMessage string
}

type ParticipantInfo struct {
	ID             GUID
	Name           string
	Team           Team
	Level          uint8
	Security       SecurityTier
	GuildID        uint32
	Skills         []uint32
	AcceptWhispers bool
}

// Participant is a connected player as seen by the chat pipeline.
// Identity fields are fixed at login; everything else is guarded by mu.
type Participant struct {
	ID   GUID
	Name string
	Team Team

	mu             sync.RWMutex
	session        Session
	level          uint8
	security       SecurityTier
	guildID        uint32
	gameMaster     bool
	acceptWhispers bool
	alive          bool
	inCombat       bool
	silenced       bool
	muteUntil      time.Time
	lastSpeak      time.Time
	whisperLimiter *rate.Limiter
	idle           IdleState
	whitelist      map[GUID]struct{}
	ignored        map[GUID]struct{}
	skills         map[uint32]struct{}
	comprehend     map[LanguageID]struct{}
	forced         *LanguageID
	group          *Group
	originalGroup  *Group
	addonPrefixes  map[string]struct{}
}

func NewParticipant(info ParticipantInfo, session Session) *Participant {
	p := &Participant{
		ID:             info.ID,
		Name:           info.Name,
		Team:           info.Team,
		session:        session,
		level:          info.Level,
		security:       info.Security,
		guildID:        info.GuildID,
		acceptWhispers: info.AcceptWhispers,
		alive:          true,
		whitelist:      make(map[GUID]struct{}),
		ignored:        make(map[GUID]struct{}),
		skills:         make(map[uint32]struct{}),
		comprehend:     make(map[LanguageID]struct{}),
		addonPrefixes:  make(map[string]struct{}),
	}
	for _, skill := range info.Skills {
		p.skills[skill] = struct{}{}
	}
	return p
}

func (p *Participant) Session() Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.session
}

func (p *Participant) Level() uint8 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

func (p *Participant) SetLevel(level uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

func (p *Participant) Security() SecurityTier {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.security
}

// IsPlayerAccount reports whether the participant's account is unprivileged.
func (p *Participant) IsPlayerAccount() bool {
	return p.Security().IsPlayer()
}

func (p *Participant) GuildID() uint32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.guildID
}

func (p *Participant) SetGuildID(id uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.guildID = id
}

// IsGameMaster reports whether game master mode is switched on.
func (p *Participant) IsGameMaster() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.gameMaster
}

func (p *Participant) SetGameMaster(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gameMaster = on
}

func (p *Participant) AcceptsWhispers() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.acceptWhispers
}

func (p *Participant) SetAcceptWhispers(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acceptWhispers = on
}

func (p *Participant) IsAlive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.alive
}

func (p *Participant) SetAlive(alive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alive = alive
}

func (p *Participant) IsInCombat() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inCombat
}

func (p *Participant) SetInCombat(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inCombat = on
}

// IsSilenced reports whether the moderation silence effect is active.
func (p *Participant) IsSilenced() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.silenced
}

func (p *Participant) SetSilenced(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.silenced = on
}

// Mute forbids speaking until the given instant. A zero time lifts the mute.
func (p *Participant) Mute(until time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muteUntil = until
}

// CanSpeak reports whether the mute has expired at now.
func (p *Participant) CanSpeak(now time.Time) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.muteUntil.After(now)
}

// MuteRemaining returns how long the mute still lasts at now.
func (p *Participant) MuteRemaining(now time.Time) time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.muteUntil.After(now) {
		return 0
	}
	return p.muteUntil.Sub(now)
}

func (p *Participant) UpdateSpeakTime(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSpeak = now
}

func (p *Participant) LastSpeak() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastSpeak
}

// AllowWhisper consumes one whisper token at now.
// The limiter is created on first use with the given refill interval and burst.
func (p *Participant) AllowWhisper(now time.Time, interval time.Duration, burst int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.whisperLimiter == nil {
		p.whisperLimiter = rate.NewLimiter(rate.Every(interval), burst)
	}
	return p.whisperLimiter.AllowN(now, 1)
}

func (p *Participant) Idle() IdleState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.idle
}

// UpdateIdle applies fn to the idle state under the participant's lock.
func (p *Participant) UpdateIdle(fn func(state *IdleState)) IdleState {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.idle)
	return p.idle
}

func (p *Participant) IsWhitelisted(id GUID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.whitelist[id]
	return ok
}

func (p *Participant) AddToWhitelist(id GUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.whitelist[id] = struct{}{}
}

func (p *Participant) Ignore(id GUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ignored[id] = struct{}{}
}

func (p *Participant) IsIgnoring(id GUID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.ignored[id]
	return ok
}

func (p *Participant) HasSkill(skill uint32) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.skills[skill]
	return ok
}

func (p *Participant) LearnSkill(skill uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.skills[skill] = struct{}{}
}

// HasLanguageOverride reports whether a comprehend-language effect grants id.
func (p *Participant) HasLanguageOverride(id LanguageID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.comprehend[id]
	return ok
}

func (p *Participant) AddLanguageOverride(id LanguageID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.comprehend[id] = struct{}{}
}

func (p *Participant) RemoveLanguageOverride(id LanguageID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.comprehend, id)
}

// ForcedLanguage returns the language imposed by a mod-language effect, if any.
func (p *Participant) ForcedLanguage() (LanguageID, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.forced == nil {
		return 0, false
	}
	return *p.forced, true
}

// SetForcedLanguage installs or, with nil, removes a mod-language effect.
func (p *Participant) SetForcedLanguage(id *LanguageID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forced = id
}

// Group is the group the participant currently belongs to, battleground groups included.
func (p *Participant) Group() *Group {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.group
}

func (p *Participant) SetGroup(g *Group) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.group = g
}

// OriginalGroup is the group preserved from before entering a battleground.
func (p *Participant) OriginalGroup() *Group {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.originalGroup
}

func (p *Participant) SetOriginalGroup(g *Group) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.originalGroup = g
}

func (p *Participant) RegisterAddonPrefix(prefix string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addonPrefixes[prefix] = struct{}{}
}

// AcceptsAddonPrefix reports whether addon messages tagged with prefix reach this participant.
// A participant without registrations accepts every prefix.
func (p *Participant) AcceptsAddonPrefix(prefix string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.addonPrefixes) == 0 {
		return true
	}
	_, ok := p.addonPrefixes[prefix]
	return ok
}
