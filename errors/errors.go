package errors

import (
	"errors"
	"fmt"
)

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrInvalidPayload = fmt.Errorf("invalid event payload")
	ErrSessionClosed  = fmt.Errorf("session closed")
	ErrUnknownSession = fmt.Errorf("unknown session")
	ErrSessionBusy    = fmt.Errorf("session inbox full")
	ErrAlreadyOnline  = fmt.Errorf("participant already connected")
	ErrEmptyWords     = fmt.Errorf("no censored words loaded")

	// Protocol
	ErrUnknownOpcode     = fmt.Errorf("unknown chat opcode")
	ErrWrongMessageType  = fmt.Errorf("chat message type out of range")
	ErrMalformedMessage  = fmt.Errorf("malformed chat message")
	ErrTrailingBytes     = fmt.Errorf("trailing bytes after chat message")
	ErrUnknownTextEmote  = fmt.Errorf("unknown text emote")
	ErrUnsupportedNotice = fmt.Errorf("notice cannot be encoded")

	// Policy
	ErrUnknownLanguage    = fmt.Errorf("unknown language")
	ErrLanguageNotLearned = fmt.Errorf("language not learned")
	ErrMuted              = fmt.Errorf("sender is muted")
	ErrSilenced           = fmt.Errorf("sender is silenced")
	ErrFloodControl       = fmt.Errorf("whisper flood control")
	ErrInvalidLinkContent = fmt.Errorf("invalid link in chat message")
	ErrEmptyText          = fmt.Errorf("empty chat text")
	ErrHandledAsCommand   = fmt.Errorf("text handled as a command")

	// Ineligible
	ErrLevelRequirement     = fmt.Errorf("level requirement not met")
	ErrPlayerNotFound       = fmt.Errorf("player not found")
	ErrPlayerAmbiguous      = fmt.Errorf("player name is ambiguous")
	ErrWhispersBlocked      = fmt.Errorf("receiver does not accept whispers")
	ErrWrongFaction         = fmt.Errorf("receiver belongs to the other faction")
	ErrNoGroup              = fmt.Errorf("sender has no eligible group")
	ErrNoGuild              = fmt.Errorf("sender has no guild")
	ErrNoChannel            = fmt.Errorf("unknown chat channel")
	ErrNotChannelMember     = fmt.Errorf("sender is not on the channel")
	ErrChannelMuted         = fmt.Errorf("sender is muted on the channel")
	ErrNotRaidAssistant     = fmt.Errorf("sender may not send raid warnings")
	ErrInCombat             = fmt.Errorf("sender is in combat")
	ErrAddonChannelDisabled = fmt.Errorf("addon channel disabled")
	ErrDeadSender           = fmt.Errorf("sender is dead")
	ErrUnroutableKind       = fmt.Errorf("chat kind has no route")

	// Escalation
	ErrSessionKicked = fmt.Errorf("session kicked")
)

// Category places an error in the chat failure taxonomy.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryProtocol
	CategoryPolicy
	CategoryIneligible
	CategoryEscalation
)

func (c Category) String() string {
	switch c {
	case CategoryProtocol:
		return "protocol"
	case CategoryPolicy:
		return "policy"
	case CategoryIneligible:
		return "ineligible"
	case CategoryEscalation:
		return "escalation"
	default:
		return "none"
	}
}

var categories = []struct {
	category Category
	errs     []error
}{
	{CategoryEscalation, []error{ErrSessionKicked}},
	{CategoryProtocol, []error{ErrUnknownOpcode, ErrWrongMessageType, ErrMalformedMessage, ErrTrailingBytes, ErrUnknownTextEmote}},
	{CategoryPolicy, []error{ErrUnknownLanguage, ErrLanguageNotLearned, ErrMuted, ErrSilenced,
		ErrFloodControl, ErrInvalidLinkContent, ErrEmptyText, ErrHandledAsCommand}},
	{CategoryIneligible, []error{ErrLevelRequirement, ErrPlayerNotFound, ErrPlayerAmbiguous,
		ErrWhispersBlocked, ErrWrongFaction, ErrNoGroup, ErrNoGuild, ErrNoChannel, ErrNotChannelMember,
		ErrChannelMuted, ErrNotRaidAssistant, ErrInCombat, ErrAddonChannelDisabled, ErrDeadSender, ErrUnroutableKind}},
}

// CategoryOf returns the category of the first known sentinel wrapped by err.
// Escalation wins over everything else.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNone
	}
	for _, c := range categories {
		for _, target := range c.errs {
			if errors.Is(err, target) {
				return c.category
			}
		}
	}
	return CategoryNone
}

// Is forwards to the standard library so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
