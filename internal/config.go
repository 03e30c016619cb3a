package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"world-chat/domain"
	"world-chat/runtime"
)

type Config struct {
	FakeMessagePreventing      bool    `env:"CHAT_FAKE_MESSAGE_PREVENTING,default=true"`
	StrictLinkCheckingSeverity int     `env:"CHAT_STRICT_LINK_CHECKING_SEVERITY,default=0" validate:"gte=0,lte=3"`
	StrictLinkCheckingKick     bool    `env:"CHAT_STRICT_LINK_CHECKING_KICK,default=false"`
	AddonChannel               bool    `env:"ADDON_CHANNEL,default=true"`
	ChatLogAddon               bool    `env:"CHATLOG_ADDON,default=false"`
	CrossFactionChat           bool    `env:"ALLOW_TWO_SIDE_INTERACTION_CHAT,default=false"`
	CrossFactionGroup          bool    `env:"ALLOW_TWO_SIDE_INTERACTION_GROUP,default=false"`
	CrossFactionGuild          bool    `env:"ALLOW_TWO_SIDE_INTERACTION_GUILD,default=false"`
	CrossFactionChannel        bool    `env:"ALLOW_TWO_SIDE_INTERACTION_CHANNEL,default=false"`
	SayLevelReq                int     `env:"CHAT_SAY_LEVEL_REQ,default=1" validate:"gte=0,lte=255"`
	WhisperLevelReq            int     `env:"CHAT_WHISPER_LEVEL_REQ,default=1" validate:"gte=0,lte=255"`
	ChannelLevelReq            int     `env:"CHAT_CHANNEL_LEVEL_REQ,default=1" validate:"gte=0,lte=255"`
	ListenRangeSay             float64 `env:"LISTEN_RANGE_SAY,default=25" validate:"gt=0"`
	ListenRangeYell            float64 `env:"LISTEN_RANGE_YELL,default=300" validate:"gt=0"`
	ListenRangeTextEmote       float64 `env:"LISTEN_RANGE_TEXTEMOTE,default=25" validate:"gt=0"`

	WhisperFloodInterval time.Duration `env:"CHAT_WHISPER_FLOOD_INTERVAL,default=1s" validate:"gt=0"`
	WhisperFloodBurst    int           `env:"CHAT_WHISPER_FLOOD_BURST,default=10" validate:"gt=0"`

	// CensoredWords is a comma separated list added to the embedded word lists.
	CensoredWords   string `env:"CHAT_CENSORED_WORDS"`
	CharReplacement string `env:"CHAT_CENSOR_CHARACTER,default=*"`
	CommandPrefixes string `env:"CHAT_COMMAND_PREFIXES,default=."`
	Locale          string `env:"LOCALE,default=en-US" validate:"required"`

	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true" validate:"required"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,required=true" validate:"gt=0,lte=65535"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081" validate:"gt=0,lte=65535"`
	SessionBuffer   int           `env:"SESSION_BUFFER_SIZE,default=64" validate:"gt=0"`
	EventBuffer     int           `env:"EVENT_BUFFER_SIZE,default=1024" validate:"gt=0"`
	IndexBatchSize  int           `env:"INDEX_BATCH_SIZE,default=100" validate:"gt=0"`
	IndexTimeout    time.Duration `env:"INDEX_BUFFER_TIMEOUT,default=2s" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=0s" validate:"gte=0"`

	// AuthSecret enables player token checks on the gateway. Empty means a trusted proxy sets the GUID header.
	AuthSecret string `env:"AUTH_SECRET" validate:"omitempty,min=16"`
}

// Validate checks the ranges go-env cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

// Policy is the chat policy described by the configuration.
func (c Config) Policy() domain.Policy {
	policy := domain.DefaultPolicy()
	policy.FakeMessagePreventing = c.FakeMessagePreventing
	policy.StrictLinkCheckingSeverity = c.StrictLinkCheckingSeverity
	policy.StrictLinkCheckingKick = c.StrictLinkCheckingKick
	policy.AddonChannel = c.AddonChannel
	policy.ChatLogAddon = c.ChatLogAddon
	policy.CrossFactionChat = c.CrossFactionChat
	policy.CrossFactionGroup = c.CrossFactionGroup
	policy.CrossFactionGuild = c.CrossFactionGuild
	policy.CrossFactionChannel = c.CrossFactionChannel
	policy.SayLevelReq = uint8(c.SayLevelReq)
	policy.WhisperLevelReq = uint8(c.WhisperLevelReq)
	policy.ChannelLevelReq = uint8(c.ChannelLevelReq)
	policy.ListenRangeSay = c.ListenRangeSay
	policy.ListenRangeYell = c.ListenRangeYell
	policy.ListenRangeTextEmote = c.ListenRangeTextEmote
	policy.WhisperFloodInterval = c.WhisperFloodInterval
	policy.WhisperFloodBurst = c.WhisperFloodBurst
	return policy
}

// Settings are the runtime knobs. Validate must have succeeded.
func (c Config) Settings() runtime.Settings {
	replacement, _ := CharacterRune(c.CharReplacement)
	return runtime.Settings{
		EventBuffer:     c.EventBuffer,
		SessionBuffer:   c.SessionBuffer,
		SinkTimeout:     c.SinkTimeout,
		MetricInterval:  c.MetricInterval,
		CharReplacement: replacement,
		CensoredWords:   splitList(c.CensoredWords),
		CommandPrefixes: splitList(c.CommandPrefixes),
	}
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHAT_CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
