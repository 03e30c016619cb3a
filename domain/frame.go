package domain

import (
	"time"

	"github.com/google/uuid"
)

// Frame is a fully resolved outbound chat message. Frames are values: copies never alias.
type Frame struct {
	ID          uuid.UUID
	Kind        Kind
	Language    LanguageID
	Sender      GUID
	SenderName  string
	Text        string
	AddonPrefix string
	// Target names the channel or receiver the frame was addressed to, when there is one.
	Target    string
	EmoteID   uint32
	EmoteWith GUID
	At        time.Time
}

func NewFrame(kind Kind, language LanguageID, sender *Participant, text string, at time.Time) Frame {
	return Frame{
		ID:         uuid.New(),
		Kind:       kind,
		Language:   language,
		Sender:     sender.ID,
		SenderName: sender.Name,
		Text:       text,
		At:         at,
	}
}

func (f Frame) WithTarget(target string) Frame {
	f.Target = target
	return f
}

func (f Frame) WithAddonPrefix(prefix string) Frame {
	f.AddonPrefix = prefix
	return f
}

func (f Frame) WithEmote(emoteID uint32, with GUID) Frame {
	f.EmoteID = emoteID
	f.EmoteWith = with
	return f
}
