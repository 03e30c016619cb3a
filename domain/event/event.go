package event

import (
	"time"

	"github.com/google/uuid"

	"world-chat/domain"
)

// Audience tells sinks how a chat event was addressed.
type Audience uint8

const (
	AudienceSelf Audience = iota
	AudienceProximity
	AudienceWhisper
	AudienceGroup
	AudienceGuild
	AudienceChannel
)

func (a Audience) String() string {
	switch a {
	case AudienceProximity:
		return "proximity"
	case AudienceWhisper:
		return "whisper"
	case AudienceGroup:
		return "group"
	case AudienceGuild:
		return "guild"
	case AudienceChannel:
		return "channel"
	default:
		return "self"
	}
}

// ChatObserved is the audit record of one chat event, emitted before transmission.
type ChatObserved struct {
	ID         uuid.UUID
	Sender     domain.GUID
	SenderName string
	Kind       domain.Kind
	Language   domain.LanguageID
	Text       string
	Prefix     string
	Audience   Audience
	Target     string
	Recipients int
	At         time.Time
}

// FromFrame builds the audit record of a frame about to be delivered.
func FromFrame(frame domain.Frame, audience Audience, recipients int) ChatObserved {
	return ChatObserved{
		ID:         frame.ID,
		Sender:     frame.Sender,
		SenderName: frame.SenderName,
		Kind:       frame.Kind,
		Language:   frame.Language,
		Text:       frame.Text,
		Prefix:     frame.AddonPrefix,
		Audience:   audience,
		Target:     frame.Target,
		Recipients: recipients,
		At:         frame.At,
	}
}
