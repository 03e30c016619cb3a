package domain

import "fmt"

// Kind is the chat message type carried by envelopes and frames.
// Values follow the client's chat type numbering.
type Kind uint8

const (
	KindSystem             Kind = 0
	KindSay                Kind = 1
	KindParty              Kind = 2
	KindRaid               Kind = 3
	KindGuild              Kind = 4
	KindOfficer            Kind = 5
	KindYell               Kind = 6
	KindWhisper            Kind = 7
	KindEmote              Kind = 10
	KindTextEmote          Kind = 11
	KindChannel            Kind = 17
	KindAFK                Kind = 23
	KindDND                Kind = 24
	KindIgnored            Kind = 25
	KindRaidLeader         Kind = 39
	KindRaidWarning        Kind = 40
	KindInstanceChat       Kind = 44
	KindInstanceChatLeader Kind = 45
	KindPartyLeader        Kind = 51
	KindAddon              Kind = 63

	// MaxKind is the first value outside the enumerated range.
	MaxKind Kind = 64
)

// IsValid reports whether k is one of the known chat kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindSystem, KindSay, KindParty, KindRaid, KindGuild, KindOfficer,
		KindYell, KindWhisper, KindEmote, KindTextEmote, KindChannel,
		KindAFK, KindDND, KindIgnored, KindRaidLeader, KindRaidWarning,
		KindInstanceChat, KindInstanceChatLeader, KindPartyLeader, KindAddon:
		return true
	}
	return false
}

// IsPresence reports whether k toggles the sender's idle state instead of being delivered.
func (k Kind) IsPresence() bool {
	return k == KindAFK || k == KindDND
}

// CarriesLanguage reports whether the wire form of k declares a language.
func (k Kind) CarriesLanguage() bool {
	switch k {
	case KindEmote, KindAFK, KindDND:
		return false
	}
	return true
}

// IsGroupScoped reports whether k is addressed to the sender's party or raid.
func (k Kind) IsGroupScoped() bool {
	switch k {
	case KindParty, KindPartyLeader, KindRaid, KindRaidLeader, KindRaidWarning:
		return true
	}
	return false
}

// IsGuildScoped reports whether k is addressed to the sender's guild.
func (k Kind) IsGuildScoped() bool {
	return k == KindGuild || k == KindOfficer
}

func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "SYSTEM"
	case KindSay:
		return "SAY"
	case KindParty:
		return "PARTY"
	case KindRaid:
		return "RAID"
	case KindGuild:
		return "GUILD"
	case KindOfficer:
		return "OFFICER"
	case KindYell:
		return "YELL"
	case KindWhisper:
		return "WHISPER"
	case KindEmote:
		return "EMOTE"
	case KindTextEmote:
		return "TEXT_EMOTE"
	case KindChannel:
		return "CHANNEL"
	case KindAFK:
		return "AFK"
	case KindDND:
		return "DND"
	case KindIgnored:
		return "IGNORED"
	case KindRaidLeader:
		return "RAID_LEADER"
	case KindRaidWarning:
		return "RAID_WARNING"
	case KindInstanceChat:
		return "INSTANCE_CHAT"
	case KindInstanceChatLeader:
		return "INSTANCE_CHAT_LEADER"
	case KindPartyLeader:
		return "PARTY_LEADER"
	case KindAddon:
		return "ADDON"
	default:
		return fmt.Sprintf("KIND(%d)", uint8(k))
	}
}
