package packet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"world-chat/domain"
	"world-chat/errors"
)

func TestDecode_Say(t *testing.T) {
	req := require.New(t)
	payload := append([]byte{0x07, 0x00, 0x00, 0x00, 0x05}, "hello"...)

	env, err := Decode(CMsgChatMessageSay, payload)
	req.NoError(err)
	req.Equal(domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: "hello"}, env)
}

func TestDecode_Whisper_Reads_Both_Lengths_Before_Strings(t *testing.T) {
	req := require.New(t)
	// Given a 9-bit name length of 4 followed by an 8-bit text length of 2
	payload := []byte{0x07, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00}
	payload = append(payload, "Zzyx"...)
	payload = append(payload, "hi"...)

	// When
	env, err := Decode(CMsgChatMessageWhisper, payload)

	// Then
	req.NoError(err)
	req.Equal(domain.Whisper{Language: domain.LangCommon, Receiver: "Zzyx", Text: "hi"}, env)
}

func TestDecode_Kinds_Without_Language(t *testing.T) {
	req := require.New(t)
	payload := append([]byte{0x03}, "brb"...)

	env, err := Decode(CMsgChatMessageAFK, payload)
	req.NoError(err)
	req.Equal(domain.Presence{Type: domain.KindAFK, Text: "brb"}, env)
	req.True(domain.IgnoresChecks(env))

	env, err = Decode(CMsgChatMessageEmote, payload)
	req.NoError(err)
	req.Equal(domain.Emote{Text: "brb"}, env)
	req.Equal(domain.LangUniversal, domain.LanguageOf(env))
}

func TestDecode_Encode_Agree_On_Every_Chat_Shape(t *testing.T) {
	req := require.New(t)
	envelopes := []domain.Envelope{
		domain.Speech{Type: domain.KindYell, Language: domain.LangOrcish, Text: "For the Horde"},
		domain.Speech{Type: domain.KindRaidWarning, Language: domain.LangCommon, Text: "stack on me"},
		domain.ChannelPost{Language: domain.LangCommon, Channel: "Trade - City", Text: "WTS ore"},
		domain.Presence{Type: domain.KindDND, Text: ""},
	}
	for _, want := range envelopes {
		op, payload, err := Encode(want)
		req.NoError(err)
		got, err := Decode(op, payload)
		req.NoError(err)
		req.Equal(want, got)
	}
}

func TestDecode_Rejects_Bad_Frames(t *testing.T) {
	tests := []struct {
		name     string
		op       Opcode
		payload  []byte
		expected error
	}{
		{
			name:     "Unknown opcode",
			op:       Opcode(0xFFFF),
			payload:  []byte{0x00},
			expected: errors.ErrUnknownOpcode,
		},
		{
			name:     "Missing language",
			op:       CMsgChatMessageSay,
			payload:  []byte{0x07, 0x00},
			expected: errors.ErrMalformedMessage,
		},
		{
			name:     "Declared text longer than payload",
			op:       CMsgChatMessageSay,
			payload:  append([]byte{0x07, 0x00, 0x00, 0x00, 0x09}, "hello"...),
			expected: errors.ErrMalformedMessage,
		},
		{
			name:     "Bytes left after the text",
			op:       CMsgChatMessageSay,
			payload:  append([]byte{0x07, 0x00, 0x00, 0x00, 0x02}, "hello"...),
			expected: errors.ErrTrailingBytes,
		},
		{
			name:     "Truncated whisper header",
			op:       CMsgChatMessageWhisper,
			payload:  []byte{0x07, 0x00, 0x00, 0x00, 0x02},
			expected: errors.ErrMalformedMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := Decode(tt.op, tt.payload)
			req.ErrorIs(err, tt.expected)
			req.Equal(errors.CategoryProtocol, errors.CategoryOf(err))
		})
	}
}

func TestDecodeAddon_Whisper_Shape(t *testing.T) {
	req := require.New(t)
	// Given target(9)=3, prefix(7)=3, message(8)=2 then target, message, prefix
	payload := []byte{0x01, 0x83, 0x02}
	payload = append(payload, "Bob"...)
	payload = append(payload, "hi"...)
	payload = append(payload, "DBM"...)

	// When
	env, err := DecodeAddon(CMsgChatAddonMessageWhisper, payload)

	// Then
	req.NoError(err)
	req.Equal(domain.AddonPayload{Type: domain.KindWhisper, Prefix: "DBM", Text: "hi", Target: "Bob"}, env)

	op, encoded, err := EncodeAddon(env)
	req.NoError(err)
	req.Equal(CMsgChatAddonMessageWhisper, op)
	req.Equal(payload, encoded)
}

func TestDecodeAddon_Broadcast_Shape(t *testing.T) {
	req := require.New(t)
	want := domain.AddonPayload{Type: domain.KindRaid, Prefix: "BigWigs", Text: "pull:10"}

	op, payload, err := EncodeAddon(want)
	req.NoError(err)
	req.Equal(CMsgChatAddonMessageRaid, op)
	req.Equal(FamilyAddon, FamilyOf(op))

	got, err := DecodeAddon(op, payload)
	req.NoError(err)
	req.Equal(want, got)

	_, err = DecodeAddon(CMsgChatMessageSay, payload)
	req.ErrorIs(err, errors.ErrUnknownOpcode)
}

func TestDecodeTextEmote_And_ChatIgnored(t *testing.T) {
	req := require.New(t)
	emote := TextEmoteRequest{EmoteNum: 3, TextEmote: 101, Target: 42}
	got, err := DecodeTextEmote(EncodeTextEmote(emote))
	req.NoError(err)
	req.Equal(emote, got)

	_, err = DecodeTextEmote([]byte{0x01, 0x00})
	req.ErrorIs(err, errors.ErrMalformedMessage)

	ignored := ChatIgnoredRequest{Reason: 1, Ignored: 7}
	gotIgnored, err := DecodeChatIgnored(EncodeChatIgnored(ignored))
	req.NoError(err)
	req.Equal(ignored, gotIgnored)

	id, err := DecodeEmote(EncodeEmote(10))
	req.NoError(err)
	req.Equal(uint32(10), id)
}

func TestFamilyOf(t *testing.T) {
	req := require.New(t)
	req.Equal(FamilyChat, FamilyOf(CMsgChatMessageParty))
	req.Equal(FamilyEmote, FamilyOf(CMsgEmote))
	req.Equal(FamilyTextEmote, FamilyOf(CMsgTextEmote))
	req.Equal(FamilyChatIgnored, FamilyOf(CMsgChatIgnored))
	req.Equal(FamilyUnknown, FamilyOf(SMsgMessageChat))
}
