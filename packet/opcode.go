package packet

import (
	"fmt"

	"world-chat/domain"
)

// Opcode identifies an inbound or outbound packet.
type Opcode uint16

// Client chat opcodes.
const (
	CMsgChatMessageSay         Opcode = 0x0A9A
	CMsgChatMessageYell        Opcode = 0x04DA
	CMsgChatMessageChannel     Opcode = 0x00DA
	CMsgChatMessageWhisper     Opcode = 0x123E
	CMsgChatMessageGuild       Opcode = 0x0CDA
	CMsgChatMessageOfficer     Opcode = 0x0458
	CMsgChatMessageAFK         Opcode = 0x0E1A
	CMsgChatMessageDND         Opcode = 0x002E
	CMsgChatMessageEmote       Opcode = 0x103E
	CMsgChatMessageParty       Opcode = 0x109A
	CMsgChatMessageRaid        Opcode = 0x083E
	CMsgChatMessageRaidWarning Opcode = 0x16AB
	CMsgChatMessageInstance    Opcode = 0x0A3E

	CMsgChatAddonMessageBattleground Opcode = 0x0A9E
	CMsgChatAddonMessageGuild        Opcode = 0x0878
	CMsgChatAddonMessageOfficer      Opcode = 0x0C5A
	CMsgChatAddonMessageParty        Opcode = 0x12DA
	CMsgChatAddonMessageRaid         Opcode = 0x101E
	CMsgChatAddonMessageWhisper      Opcode = 0x0EBB

	CMsgEmote       Opcode = 0x1924
	CMsgTextEmote   Opcode = 0x1058
	CMsgChatIgnored Opcode = 0x08DE
)

// Server opcodes.
const (
	SMsgMessageChat         Opcode = 0x1A9A
	SMsgNotification        Opcode = 0x0C2A
	SMsgChatPlayerNotFound  Opcode = 0x0B0E
	SMsgChatPlayerAmbiguous Opcode = 0x1D2A
	SMsgChatWrongFaction    Opcode = 0x0A2F
	SMsgChatRestricted      Opcode = 0x1C0A
	SMsgChannelNotify       Opcode = 0x0E0B
	SMsgTextEmote           Opcode = 0x0A0A
)

var chatKinds = map[Opcode]domain.Kind{
	CMsgChatMessageSay:         domain.KindSay,
	CMsgChatMessageYell:        domain.KindYell,
	CMsgChatMessageChannel:     domain.KindChannel,
	CMsgChatMessageWhisper:     domain.KindWhisper,
	CMsgChatMessageGuild:       domain.KindGuild,
	CMsgChatMessageOfficer:     domain.KindOfficer,
	CMsgChatMessageAFK:         domain.KindAFK,
	CMsgChatMessageDND:         domain.KindDND,
	CMsgChatMessageEmote:       domain.KindEmote,
	CMsgChatMessageParty:       domain.KindParty,
	CMsgChatMessageRaid:        domain.KindRaid,
	CMsgChatMessageRaidWarning: domain.KindRaidWarning,
	CMsgChatMessageInstance:    domain.KindInstanceChat,
}

var addonKinds = map[Opcode]domain.Kind{
	CMsgChatAddonMessageBattleground: domain.KindInstanceChat,
	CMsgChatAddonMessageGuild:        domain.KindGuild,
	CMsgChatAddonMessageOfficer:      domain.KindOfficer,
	CMsgChatAddonMessageParty:        domain.KindParty,
	CMsgChatAddonMessageRaid:         domain.KindRaid,
	CMsgChatAddonMessageWhisper:      domain.KindWhisper,
}

// Family groups opcodes by the pipeline entry point that handles them.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyChat
	FamilyAddon
	FamilyEmote
	FamilyTextEmote
	FamilyChatIgnored
)

func FamilyOf(op Opcode) Family {
	if _, ok := chatKinds[op]; ok {
		return FamilyChat
	}
	if _, ok := addonKinds[op]; ok {
		return FamilyAddon
	}
	switch op {
	case CMsgEmote:
		return FamilyEmote
	case CMsgTextEmote:
		return FamilyTextEmote
	case CMsgChatIgnored:
		return FamilyChatIgnored
	}
	return FamilyUnknown
}

// ChatOpcode returns the client opcode that carries kind.
func ChatOpcode(kind domain.Kind) (Opcode, bool) {
	for op, k := range chatKinds {
		if k == kind {
			return op, true
		}
	}
	return 0, false
}

// AddonOpcode returns the client addon opcode that carries kind.
func AddonOpcode(kind domain.Kind) (Opcode, bool) {
	for op, k := range addonKinds {
		if k == kind {
			return op, true
		}
	}
	return 0, false
}

func (o Opcode) String() string {
	return fmt.Sprintf("0x%04X", uint16(o))
}
