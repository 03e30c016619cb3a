package sink

import (
	"github.com/abadojack/whatlanggo"

	"world-chat/domain"
	"world-chat/domain/event"
	"world-chat/repositories"
)

// toRecord maps an audited event to its stored shape.
// Addon payloads are opaque, so no natural language is detected for them.
func toRecord(e event.ChatObserved) repositories.ChatRecord {
	record := repositories.ChatRecord{
		ID:         e.ID,
		Sender:     e.Sender,
		SenderName: e.SenderName,
		Kind:       e.Kind,
		Language:   e.Language,
		Text:       e.Text,
		Prefix:     e.Prefix,
		Audience:   e.Audience,
		Target:     e.Target,
		Recipients: e.Recipients,
		At:         e.At,
	}
	if e.Kind != domain.KindAddon && e.Language != domain.LangAddon && e.Text != "" {
		record.Detected = whatlanggo.Detect(e.Text).Lang.Iso6391()
	}
	return record
}
