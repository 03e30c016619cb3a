package domain

import "time"

type NoticeCode uint8

const (
	NoticeNone NoticeCode = iota
	NoticeUnknownLanguage
	NoticeLanguageNotLearned
	NoticeWaitBeforeSpeaking
	NoticePlayerNotFound
	NoticePlayerAmbiguous
	NoticeWrongFaction
	NoticeChatRestricted
	NoticeLevelRequirement
	NoticeGMSilenced
	NoticeNotChannelMember
	NoticeChannelMuted
)

func (c NoticeCode) String() string {
	switch c {
	case NoticeUnknownLanguage:
		return "UNKNOWN_LANGUAGE"
	case NoticeLanguageNotLearned:
		return "LANGUAGE_NOT_LEARNED"
	case NoticeWaitBeforeSpeaking:
		return "WAIT_BEFORE_SPEAKING"
	case NoticePlayerNotFound:
		return "PLAYER_NOT_FOUND"
	case NoticePlayerAmbiguous:
		return "PLAYER_AMBIGUOUS"
	case NoticeWrongFaction:
		return "WRONG_FACTION"
	case NoticeChatRestricted:
		return "CHAT_RESTRICTED"
	case NoticeLevelRequirement:
		return "LEVEL_REQUIREMENT"
	case NoticeGMSilenced:
		return "GM_SILENCED"
	case NoticeNotChannelMember:
		return "NOT_CHANNEL_MEMBER"
	case NoticeChannelMuted:
		return "CHANNEL_MUTED"
	default:
		return "NONE"
	}
}

// RestrictionReason is the reason code of a ChatRestricted notice.
type RestrictionReason uint8

const (
	RestrictionCommon RestrictionReason = iota
	RestrictionThrottled
	RestrictionSquelched
	RestrictionTrial
)

// Notice is a response addressed to the sender only. Which fields are set depends on Code.
type Notice struct {
	Code      NoticeCode
	Name      string
	Remaining time.Duration
	Kind      Kind
	Level     uint8
	Reason    RestrictionReason
}

func UnknownLanguage() Notice {
	return Notice{Code: NoticeUnknownLanguage}
}

func LanguageNotLearned() Notice {
	return Notice{Code: NoticeLanguageNotLearned}
}

func WaitBeforeSpeaking(remaining time.Duration) Notice {
	return Notice{Code: NoticeWaitBeforeSpeaking, Remaining: remaining}
}

func PlayerNotFound(name string) Notice {
	return Notice{Code: NoticePlayerNotFound, Name: name}
}

func PlayerAmbiguous(name string) Notice {
	return Notice{Code: NoticePlayerAmbiguous, Name: name}
}

func WrongFaction() Notice {
	return Notice{Code: NoticeWrongFaction}
}

func ChatRestricted(reason RestrictionReason) Notice {
	return Notice{Code: NoticeChatRestricted, Reason: reason}
}

func LevelRequirement(kind Kind, level uint8) Notice {
	return Notice{Code: NoticeLevelRequirement, Kind: kind, Level: level}
}

// GMSilenced names the silenced speaker.
func GMSilenced(name string) Notice {
	return Notice{Code: NoticeGMSilenced, Name: name}
}

func NotChannelMember(channel string) Notice {
	return Notice{Code: NoticeNotChannelMember, Name: channel}
}

func ChannelMuted(channel string) Notice {
	return Notice{Code: NoticeChannelMuted, Name: channel}
}

// Rejection is an error that owes the sender a notice.
type Rejection struct {
	Notice Notice
	Err    error
}

func Reject(err error, notice Notice) error {
	return Rejection{Notice: notice, Err: err}
}

func (r Rejection) Error() string {
	if r.Err == nil {
		return r.Notice.Code.String()
	}
	return r.Err.Error()
}

func (r Rejection) Unwrap() error {
	return r.Err
}
