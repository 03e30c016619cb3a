package packet

import (
	"fmt"

	"world-chat/domain"
	"world-chat/errors"
)

// Outbound length header widths, in bits.
const (
	senderNameBits   = 9
	targetBits       = 9
	outPrefixBits    = 7
	outTextBits      = 12
	notificationBits = 12
	channelNameBits  = 9
)

// fits reports an error when n cannot be written in a bits-wide length header.
func fits(field string, n int, bits uint8) error {
	if n > 1<<bits-1 {
		return fmt.Errorf("%w: %s is %d bytes, at most %d", errors.ErrMalformedMessage, field, n, 1<<bits-1)
	}
	return nil
}

// Encode is the inverse of Decode. Clients and tools use it to build chat packets.
func Encode(env domain.Envelope) (Opcode, []byte, error) {
	op, ok := ChatOpcode(env.Kind())
	if !ok {
		return 0, nil, fmt.Errorf("%w: %s", errors.ErrUnknownOpcode, env.Kind())
	}
	w := NewWriter()
	if env.Kind().CarriesLanguage() {
		w.WriteUint32(uint32(domain.LanguageOf(env)))
	}
	switch e := env.(type) {
	case domain.Whisper:
		if err := writeNamedText(w, e.Receiver, e.Text); err != nil {
			return 0, nil, err
		}
	case domain.ChannelPost:
		if err := writeNamedText(w, e.Channel, e.Text); err != nil {
			return 0, nil, err
		}
	case domain.AddonPayload:
		return 0, nil, fmt.Errorf("%w: addon payload on chat opcode", errors.ErrWrongMessageType)
	default:
		if err := fits("text", len(env.Body()), TextLengthBits); err != nil {
			return 0, nil, err
		}
		w.WriteBits(uint32(len(env.Body())), TextLengthBits)
		w.WriteString(env.Body())
	}
	return op, w.Bytes(), nil
}

// EncodeAddon is the inverse of DecodeAddon.
func EncodeAddon(env domain.AddonPayload) (Opcode, []byte, error) {
	op, ok := AddonOpcode(env.Type)
	if !ok {
		return 0, nil, fmt.Errorf("%w: addon %s", errors.ErrUnknownOpcode, env.Type)
	}
	if err := fits("addon prefix", len(env.Prefix), PrefixLengthBits); err != nil {
		return 0, nil, err
	}
	if err := fits("addon text", len(env.Text), TextLengthBits); err != nil {
		return 0, nil, err
	}
	w := NewWriter()
	if env.Type == domain.KindWhisper {
		if err := fits("addon target", len(env.Target), NameLengthBits); err != nil {
			return 0, nil, err
		}
		w.WriteBits(uint32(len(env.Target)), NameLengthBits)
		w.WriteBits(uint32(len(env.Prefix)), PrefixLengthBits)
		w.WriteBits(uint32(len(env.Text)), TextLengthBits)
		w.WriteString(env.Target)
		w.WriteString(env.Text)
		w.WriteString(env.Prefix)
		return op, w.Bytes(), nil
	}
	w.WriteBits(uint32(len(env.Prefix)), PrefixLengthBits)
	w.WriteBits(uint32(len(env.Text)), TextLengthBits)
	w.WriteString(env.Prefix)
	w.WriteString(env.Text)
	return op, w.Bytes(), nil
}

func EncodeEmote(id uint32) []byte {
	w := NewWriter()
	w.WriteUint32(id)
	return w.Bytes()
}

func EncodeTextEmote(req TextEmoteRequest) []byte {
	w := NewWriter()
	w.WriteUint32(req.EmoteNum)
	w.WriteUint32(req.TextEmote)
	w.WriteUint64(uint64(req.Target))
	return w.Bytes()
}

func EncodeChatIgnored(req ChatIgnoredRequest) []byte {
	w := NewWriter()
	w.WriteUint8(req.Reason)
	w.WriteUint64(uint64(req.Ignored))
	return w.Bytes()
}

// EncodeFrame builds the server chat message for a frame.
// Text emotes use their own opcode; every other kind shares SMsgMessageChat.
func EncodeFrame(frame domain.Frame) (Opcode, []byte) {
	w := NewWriter()
	if frame.Kind == domain.KindTextEmote {
		w.WriteUint64(uint64(frame.Sender))
		w.WriteUint64(uint64(frame.EmoteWith))
		w.WriteUint32(frame.EmoteID)
		w.WriteBits(uint32(len(frame.Target)), targetBits)
		w.WriteString(frame.Target)
		return SMsgTextEmote, w.Bytes()
	}

	w.WriteUint8(uint8(frame.Kind))
	w.WriteUint32(uint32(frame.Language))
	w.WriteUint64(uint64(frame.Sender))
	w.WriteUint32(frame.EmoteID)
	w.WriteBits(uint32(len(frame.SenderName)), senderNameBits)
	w.WriteBits(uint32(len(frame.Target)), targetBits)
	w.WriteBits(uint32(len(frame.AddonPrefix)), outPrefixBits)
	w.WriteBits(uint32(len(frame.Text)), outTextBits)
	w.WriteString(frame.SenderName)
	w.WriteString(frame.Target)
	w.WriteString(frame.AddonPrefix)
	w.WriteString(frame.Text)
	return SMsgMessageChat, w.Bytes()
}

// EncodeNotice builds the server packet for a notice.
// Notices without a dedicated opcode are sent as a notification carrying the rendered text.
func EncodeNotice(notice domain.Notice, text string) (Opcode, []byte, error) {
	w := NewWriter()
	switch notice.Code {
	case domain.NoticePlayerNotFound:
		// The client reads the name length as pairs of bytes plus a parity bit.
		n := len(notice.Name)
		w.WriteBits(uint32((n-n%2)/2), 8)
		w.WriteBit(n%2 == 1)
		w.FlushBits()
		w.WriteString(notice.Name)
		return SMsgChatPlayerNotFound, w.Bytes(), nil
	case domain.NoticePlayerAmbiguous:
		if err := fits("player name", len(notice.Name), NameLengthBits); err != nil {
			return 0, nil, err
		}
		w.WriteBits(uint32(len(notice.Name)), NameLengthBits)
		w.WriteString(notice.Name)
		return SMsgChatPlayerAmbiguous, w.Bytes(), nil
	case domain.NoticeWrongFaction:
		return SMsgChatWrongFaction, w.Bytes(), nil
	case domain.NoticeChatRestricted:
		w.WriteUint8(uint8(notice.Reason))
		return SMsgChatRestricted, w.Bytes(), nil
	case domain.NoticeNotChannelMember, domain.NoticeChannelMuted:
		if err := fits("channel name", len(notice.Name), channelNameBits); err != nil {
			return 0, nil, err
		}
		w.WriteUint8(uint8(notice.Code))
		w.WriteBits(uint32(len(notice.Name)), channelNameBits)
		w.WriteString(notice.Name)
		return SMsgChannelNotify, w.Bytes(), nil
	case domain.NoticeUnknownLanguage, domain.NoticeLanguageNotLearned, domain.NoticeWaitBeforeSpeaking,
		domain.NoticeLevelRequirement, domain.NoticeGMSilenced:
		if err := fits("notification", len(text), notificationBits); err != nil {
			return 0, nil, err
		}
		w.WriteBits(uint32(len(text)), notificationBits)
		w.WriteString(text)
		return SMsgNotification, w.Bytes(), nil
	}
	return 0, nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedNotice, notice.Code)
}

func writeNamedText(w *Writer, name, text string) error {
	if err := fits("name", len(name), NameLengthBits); err != nil {
		return err
	}
	if err := fits("text", len(text), TextLengthBits); err != nil {
		return err
	}
	w.WriteBits(uint32(len(name)), NameLengthBits)
	w.WriteBits(uint32(len(text)), TextLengthBits)
	w.WriteString(name)
	w.WriteString(text)
	return nil
}
