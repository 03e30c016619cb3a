package packet

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"world-chat/domain"
	"world-chat/errors"
)

func TestEncodeNotice_PlayerNotFound_Splits_Length_And_Parity(t *testing.T) {
	tests := []struct {
		name     string
		player   string
		expected []byte
	}{
		{name: "Even length", player: "Zzyx", expected: append([]byte{0x02, 0x00}, "Zzyx"...)},
		{name: "Odd length", player: "Bob", expected: append([]byte{0x01, 0x80}, "Bob"...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			op, payload, err := EncodeNotice(domain.PlayerNotFound(tt.player), "")
			req.NoError(err)
			req.Equal(SMsgChatPlayerNotFound, op)
			req.Equal(tt.expected, payload)
		})
	}
}

func TestEncodeNotice_Opcodes(t *testing.T) {
	tests := []struct {
		notice   domain.Notice
		expected Opcode
	}{
		{domain.PlayerAmbiguous("Bob"), SMsgChatPlayerAmbiguous},
		{domain.WrongFaction(), SMsgChatWrongFaction},
		{domain.ChatRestricted(domain.RestrictionThrottled), SMsgChatRestricted},
		{domain.NotChannelMember("world"), SMsgChannelNotify},
		{domain.ChannelMuted("world"), SMsgChannelNotify},
		{domain.UnknownLanguage(), SMsgNotification},
		{domain.WaitBeforeSpeaking(time.Minute), SMsgNotification},
		{domain.LevelRequirement(domain.KindSay, 10), SMsgNotification},
		{domain.GMSilenced("Bob"), SMsgNotification},
	}
	for _, tt := range tests {
		t.Run(tt.notice.Code.String(), func(t *testing.T) {
			req := require.New(t)
			op, _, err := EncodeNotice(tt.notice, "rendered")
			req.NoError(err)
			req.Equal(tt.expected, op)
		})
	}
}

func TestEncodeNotice_Restricted_Carries_Reason(t *testing.T) {
	req := require.New(t)
	_, payload, err := EncodeNotice(domain.ChatRestricted(domain.RestrictionThrottled), "")
	req.NoError(err)
	req.Equal([]byte{byte(domain.RestrictionThrottled)}, payload)
}

func TestEncodeNotice_None_Is_Unsupported(t *testing.T) {
	req := require.New(t)
	_, _, err := EncodeNotice(domain.Notice{}, "")
	req.ErrorIs(err, errors.ErrUnsupportedNotice)
}

func TestEncodeFrame(t *testing.T) {
	req := require.New(t)
	sender := domain.NewParticipant(domain.ParticipantInfo{ID: 9, Name: "Ana"}, nil)
	frame := domain.NewFrame(domain.KindSay, domain.LangCommon, sender, "hi", time.Now())

	op, payload := EncodeFrame(frame)
	req.Equal(SMsgMessageChat, op)
	req.Equal(byte(domain.KindSay), payload[0])
	req.Equal([]byte{0x07, 0x00, 0x00, 0x00}, payload[1:5])
	req.Equal("Anahi", string(payload[len(payload)-5:]))

	emote := domain.NewFrame(domain.KindTextEmote, domain.LangUniversal, sender, "", time.Now()).WithEmote(101, 0)
	op, _ = EncodeFrame(emote)
	req.Equal(SMsgTextEmote, op)
}

func TestEncode_Length_Headers_At_And_Over_The_Limit(t *testing.T) {
	maxText := strings.Repeat("a", 255)
	maxName := strings.Repeat("n", 511)
	tests := []struct {
		name string
		env  domain.Envelope
		ok   bool
	}{
		{name: "Say at 255 bytes", env: domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: maxText}, ok: true},
		{name: "Say at 256 bytes", env: domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: maxText + "a"}},
		{name: "Emote at 256 bytes", env: domain.Emote{Text: maxText + "a"}},
		{name: "Whisper name at 511 bytes", env: domain.Whisper{Language: domain.LangCommon, Receiver: maxName, Text: "hi"}, ok: true},
		{name: "Whisper name at 512 bytes", env: domain.Whisper{Language: domain.LangCommon, Receiver: maxName + "n", Text: "hi"}},
		{name: "Channel text at 256 bytes", env: domain.ChannelPost{Language: domain.LangCommon, Channel: "world", Text: maxText + "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			// When
			op, payload, err := Encode(tt.env)

			// Then the packet either decodes back or is refused outright
			if !tt.ok {
				req.ErrorIs(err, errors.ErrMalformedMessage)
				return
			}
			req.NoError(err)
			decoded, err := Decode(op, payload)
			req.NoError(err)
			req.Equal(tt.env, decoded)
		})
	}
}

func TestEncodeAddon_Length_Headers_At_And_Over_The_Limit(t *testing.T) {
	req := require.New(t)
	prefix := strings.Repeat("p", 127)
	text := strings.Repeat("t", 255)

	env := domain.AddonPayload{Type: domain.KindWhisper, Prefix: prefix, Text: text, Target: strings.Repeat("n", 511)}
	op, payload, err := EncodeAddon(env)
	req.NoError(err)
	decoded, err := DecodeAddon(op, payload)
	req.NoError(err)
	req.Equal(env.Text, decoded.Text)
	req.Equal(env.Prefix, decoded.Prefix)

	_, _, err = EncodeAddon(domain.AddonPayload{Type: domain.KindParty, Prefix: prefix + "p", Text: "hi"})
	req.ErrorIs(err, errors.ErrMalformedMessage)
	_, _, err = EncodeAddon(domain.AddonPayload{Type: domain.KindParty, Prefix: "p", Text: text + "t"})
	req.ErrorIs(err, errors.ErrMalformedMessage)
	_, _, err = EncodeAddon(domain.AddonPayload{Type: domain.KindWhisper, Prefix: "p", Text: "hi", Target: strings.Repeat("n", 512)})
	req.ErrorIs(err, errors.ErrMalformedMessage)
}

func TestEncodeNotice_Channel_Name_Keeps_Its_Full_Length(t *testing.T) {
	req := require.New(t)
	// Given a channel name longer than 127 bytes
	channel := strings.Repeat("c", 200)

	// When
	_, payload, err := EncodeNotice(domain.NotChannelMember(channel), "")
	req.NoError(err)

	// Then the 9-bit length header declares all 200 bytes
	r := NewReader(payload)
	code, err := r.ReadUint8()
	req.NoError(err)
	req.Equal(uint8(domain.NoticeNotChannelMember), code)
	n, err := r.ReadBits(channelNameBits)
	req.NoError(err)
	req.Equal(uint32(200), n)
	name, err := r.ReadString(n)
	req.NoError(err)
	req.Equal(channel, name)
	req.Zero(r.Remaining())

	_, _, err = EncodeNotice(domain.ChannelMuted(strings.Repeat("c", 512)), "")
	req.ErrorIs(err, errors.ErrMalformedMessage)
}
