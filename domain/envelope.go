// Package domain contains core concepts of the chat system.
// This file defines the decoded inbound chat events.
// Envelopes are built once by the decoder and never mutated afterwards.
package domain

// Envelope is one decoded inbound chat event.
// The set of implementations is closed: Speech, Emote, Whisper, ChannelPost, Presence and AddonPayload.
type Envelope interface {
	Kind() Kind
	Body() string
	envelope()
}

// Speech is a language-tagged message with a single text field:
// say, yell, party, guild, officer, raid, raid warning and instance chat.
type Speech struct {
	Type     Kind
	Language LanguageID
	Text     string
}

func (s Speech) Kind() Kind   { return s.Type }
func (s Speech) Body() string { return s.Text }
func (Speech) envelope()      {}

// Emote is a free-form /me text. The wire form carries no language.
type Emote struct {
	Text string
}

func (Emote) Kind() Kind     { return KindEmote }
func (e Emote) Body() string { return e.Text }
func (Emote) envelope()      {}

// Whisper is addressed to a single named receiver.
type Whisper struct {
	Language LanguageID
	Receiver string
	Text     string
}

func (Whisper) Kind() Kind     { return KindWhisper }
func (w Whisper) Body() string { return w.Text }
func (Whisper) envelope()      {}

// ChannelPost is addressed to a named chat channel.
type ChannelPost struct {
	Language LanguageID
	Channel  string
	Text     string
}

func (ChannelPost) Kind() Kind     { return KindChannel }
func (c ChannelPost) Body() string { return c.Text }
func (ChannelPost) envelope()      {}

// Presence toggles AFK or DND. Presence events bypass content and flood gating.
type Presence struct {
	Type Kind
	Text string
}

func (p Presence) Kind() Kind   { return p.Type }
func (p Presence) Body() string { return p.Text }
func (Presence) envelope()      {}

// AddonPayload is an opaque addon side-channel message.
// Target is only set for the whisper shape.
type AddonPayload struct {
	Type   Kind
	Prefix string
	Text   string
	Target string
}

func (a AddonPayload) Kind() Kind   { return a.Type }
func (a AddonPayload) Body() string { return a.Text }
func (AddonPayload) envelope()      {}

// LanguageOf returns the declared language of env, or LangUniversal when the kind carries none.
func LanguageOf(env Envelope) LanguageID {
	switch e := env.(type) {
	case Speech:
		return e.Language
	case Whisper:
		return e.Language
	case ChannelPost:
		return e.Language
	case AddonPayload:
		return LangAddon
	default:
		return LangUniversal
	}
}

// IgnoresChecks reports whether env skips content, mute and flood gating.
func IgnoresChecks(env Envelope) bool {
	_, ok := env.(Presence)
	return ok
}
