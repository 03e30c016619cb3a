package packet

import (
	"fmt"

	"world-chat/domain"
	"world-chat/errors"
)

// Length header widths, in bits.
const (
	NameLengthBits   = 9
	TextLengthBits   = 8
	PrefixLengthBits = 7
)

// Decode turns a chat packet into an envelope.
func Decode(op Opcode, payload []byte) (domain.Envelope, error) {
	kind, ok := chatKinds[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownOpcode, op)
	}
	if kind >= domain.MaxKind || !kind.IsValid() {
		return nil, fmt.Errorf("%w: %d", errors.ErrWrongMessageType, kind)
	}

	r := NewReader(payload)
	var language domain.LanguageID
	if kind.CarriesLanguage() {
		lang, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		language = domain.LanguageID(lang)
	}

	var env domain.Envelope
	switch kind {
	case domain.KindWhisper:
		receiver, text, err := readNamedText(r)
		if err != nil {
			return nil, err
		}
		env = domain.Whisper{Language: language, Receiver: receiver, Text: text}
	case domain.KindChannel:
		channel, text, err := readNamedText(r)
		if err != nil {
			return nil, err
		}
		env = domain.ChannelPost{Language: language, Channel: channel, Text: text}
	case domain.KindEmote:
		text, err := readText(r)
		if err != nil {
			return nil, err
		}
		env = domain.Emote{Text: text}
	case domain.KindAFK, domain.KindDND:
		text, err := readText(r)
		if err != nil {
			return nil, err
		}
		env = domain.Presence{Type: kind, Text: text}
	default:
		text, err := readText(r)
		if err != nil {
			return nil, err
		}
		env = domain.Speech{Type: kind, Language: language, Text: text}
	}
	return env, ensureConsumed(r)
}

// DecodeAddon turns an addon packet into an envelope.
// The whisper shape declares target, prefix and message lengths and carries target, message, prefix.
// Broadcast shapes declare and carry prefix then message.
func DecodeAddon(op Opcode, payload []byte) (domain.AddonPayload, error) {
	kind, ok := addonKinds[op]
	if !ok {
		return domain.AddonPayload{}, fmt.Errorf("%w: addon %s", errors.ErrUnknownOpcode, op)
	}
	r := NewReader(payload)
	env := domain.AddonPayload{Type: kind}

	if kind == domain.KindWhisper {
		targetLen, err := r.ReadBits(NameLengthBits)
		if err != nil {
			return domain.AddonPayload{}, err
		}
		prefixLen, err := r.ReadBits(PrefixLengthBits)
		if err != nil {
			return domain.AddonPayload{}, err
		}
		textLen, err := r.ReadBits(TextLengthBits)
		if err != nil {
			return domain.AddonPayload{}, err
		}
		if env.Target, err = r.ReadString(targetLen); err != nil {
			return domain.AddonPayload{}, err
		}
		if env.Text, err = r.ReadString(textLen); err != nil {
			return domain.AddonPayload{}, err
		}
		if env.Prefix, err = r.ReadString(prefixLen); err != nil {
			return domain.AddonPayload{}, err
		}
		return env, ensureConsumed(r)
	}

	prefixLen, err := r.ReadBits(PrefixLengthBits)
	if err != nil {
		return domain.AddonPayload{}, err
	}
	textLen, err := r.ReadBits(TextLengthBits)
	if err != nil {
		return domain.AddonPayload{}, err
	}
	if env.Prefix, err = r.ReadString(prefixLen); err != nil {
		return domain.AddonPayload{}, err
	}
	if env.Text, err = r.ReadString(textLen); err != nil {
		return domain.AddonPayload{}, err
	}
	return env, ensureConsumed(r)
}

// DecodeEmote reads the animation id of a plain emote.
func DecodeEmote(payload []byte) (uint32, error) {
	r := NewReader(payload)
	id, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return id, ensureConsumed(r)
}

// TextEmoteRequest is a decoded text emote: the emote number, the catalog id and the optional target.
type TextEmoteRequest struct {
	EmoteNum  uint32
	TextEmote uint32
	Target    domain.GUID
}

func DecodeTextEmote(payload []byte) (TextEmoteRequest, error) {
	r := NewReader(payload)
	emoteNum, err := r.ReadUint32()
	if err != nil {
		return TextEmoteRequest{}, err
	}
	textEmote, err := r.ReadUint32()
	if err != nil {
		return TextEmoteRequest{}, err
	}
	target, err := r.ReadUint64()
	if err != nil {
		return TextEmoteRequest{}, err
	}
	return TextEmoteRequest{EmoteNum: emoteNum, TextEmote: textEmote, Target: domain.GUID(target)}, ensureConsumed(r)
}

// ChatIgnoredRequest tells the server that the sender ignored a message from Ignored.
type ChatIgnoredRequest struct {
	Reason  uint8
	Ignored domain.GUID
}

func DecodeChatIgnored(payload []byte) (ChatIgnoredRequest, error) {
	r := NewReader(payload)
	reason, err := r.ReadUint8()
	if err != nil {
		return ChatIgnoredRequest{}, err
	}
	guid, err := r.ReadUint64()
	if err != nil {
		return ChatIgnoredRequest{}, err
	}
	return ChatIgnoredRequest{Reason: reason, Ignored: domain.GUID(guid)}, ensureConsumed(r)
}

func readText(r *Reader) (string, error) {
	n, err := r.ReadBits(TextLengthBits)
	if err != nil {
		return "", err
	}
	return r.ReadString(n)
}

// readNamedText reads both lengths before either string: name length, text length, name, text.
func readNamedText(r *Reader) (string, string, error) {
	nameLen, err := r.ReadBits(NameLengthBits)
	if err != nil {
		return "", "", err
	}
	textLen, err := r.ReadBits(TextLengthBits)
	if err != nil {
		return "", "", err
	}
	name, err := r.ReadString(nameLen)
	if err != nil {
		return "", "", err
	}
	text, err := r.ReadString(textLen)
	if err != nil {
		return "", "", err
	}
	return name, text, nil
}

func ensureConsumed(r *Reader) error {
	if n := r.Remaining(); n > 0 {
		return fmt.Errorf("%w: %d bytes", errors.ErrTrailingBytes, n)
	}
	return nil
}
