package domain

import "time"

// Policy is the chat configuration handed to every pipeline component.
// It is a value: components never observe a change in the middle of a message.
type Policy struct {
	FakeMessagePreventing      bool
	StrictLinkCheckingSeverity int
	StrictLinkCheckingKick     bool
	AddonChannel               bool
	ChatLogAddon               bool
	CrossFactionChat           bool
	CrossFactionGroup          bool
	CrossFactionGuild          bool
	CrossFactionChannel        bool
	SayLevelReq                uint8
	WhisperLevelReq            uint8
	ChannelLevelReq            uint8
	ListenRangeSay             float64
	ListenRangeYell            float64
	ListenRangeTextEmote       float64
	WhisperFloodInterval       time.Duration
	WhisperFloodBurst          int
	DefaultAFKMessage          string
	DefaultDNDMessage          string
}

func DefaultPolicy() Policy {
	return Policy{
		FakeMessagePreventing: true,
		AddonChannel:          true,
		SayLevelReq:           1,
		WhisperLevelReq:       1,
		ChannelLevelReq:       1,
		ListenRangeSay:        25,
		ListenRangeYell:       300,
		ListenRangeTextEmote:  25,
		WhisperFloodInterval:  time.Second,
		WhisperFloodBurst:     10,
		DefaultAFKMessage:     "Away from Keyboard",
		DefaultDNDMessage:     "Do not Disturb",
	}
}
