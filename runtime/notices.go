package runtime

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"world-chat/domain"
)

// Message keys of every notice. Only some of them travel as text on the wire,
// the others are shown to gateway listeners and written to logs.
const (
	keyUnknownLanguage    = "notice.unknown_language"
	keyLanguageNotLearned = "notice.language_not_learned"
	keyWaitBeforeSpeaking = "notice.wait_before_speaking"
	keyLevelRequirement   = "notice.level_requirement"
	keyGMSilenced         = "notice.gm_silenced"
	keyPlayerNotFound     = "notice.player_not_found"
	keyPlayerAmbiguous    = "notice.player_ambiguous"
	keyWrongFaction       = "notice.wrong_faction"
	keyNotChannelMember   = "notice.not_channel_member"
	keyChannelMuted       = "notice.channel_muted"
	keyRestrictedCommon   = "notice.restricted.common"
	keyRestrictedThrottle = "notice.restricted.throttled"
	keyRestrictedSquelch  = "notice.restricted.squelched"
	keyRestrictedTrial    = "notice.restricted.trial"
)

var translations = map[string]map[string]string{
	"en-US": {
		keyUnknownLanguage:    "Unknown language",
		keyLanguageNotLearned: "You don't know that language.",
		keyWaitBeforeSpeaking: "You must wait %s before speaking again.",
		keyLevelRequirement:   "You need to be level %d to use %s chat.",
		keyGMSilenced:         "%s has been silenced by a Game Master.",
		keyPlayerNotFound:     "No player named '%s' is currently playing.",
		keyPlayerAmbiguous:    "More than one player is named '%s'.",
		keyWrongFaction:       "You cannot whisper to the other faction.",
		keyNotChannelMember:   "You are not on channel %s.",
		keyChannelMuted:       "You do not have permission to speak on channel %s.",
		keyRestrictedCommon:   "Your chat is restricted.",
		keyRestrictedThrottle: "You are sending messages too quickly.",
		keyRestrictedSquelch:  "You have been squelched.",
		keyRestrictedTrial:    "Trial accounts cannot send this message.",
	},
	"fr-FR": {
		keyUnknownLanguage:    "Langue inconnue",
		keyLanguageNotLearned: "Vous ne connaissez pas cette langue.",
		keyWaitBeforeSpeaking: "Vous devez attendre %s avant de parler à nouveau.",
		keyLevelRequirement:   "Vous devez être niveau %d pour utiliser le canal %s.",
		keyGMSilenced:         "%s a été réduit au silence par un maître du jeu.",
		keyPlayerNotFound:     "Aucun joueur nommé '%s' n'est connecté.",
		keyPlayerAmbiguous:    "Plusieurs joueurs s'appellent '%s'.",
		keyWrongFaction:       "Vous ne pouvez pas chuchoter à l'autre faction.",
		keyNotChannelMember:   "Vous n'êtes pas sur le canal %s.",
		keyChannelMuted:       "Vous n'avez pas le droit de parler sur le canal %s.",
		keyRestrictedCommon:   "Votre discussion est restreinte.",
		keyRestrictedThrottle: "Vous envoyez des messages trop vite.",
		keyRestrictedSquelch:  "Vous avez été réduit au silence.",
		keyRestrictedTrial:    "Les comptes d'essai ne peuvent pas envoyer ce message.",
	},
}

// Notifier renders notice text in the configured locale.
type Notifier struct {
	printer *message.Printer
}

// NewNotifier builds a notifier for locale. Unknown locales fall back to en-US.
func NewNotifier(locale string) (*Notifier, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for name, messages := range translations {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", name, err)
		}
		for key, text := range messages {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("register %s for %s: %w", key, name, err)
			}
		}
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	supported := builder.Languages()
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	chosen := language.AmericanEnglish
	if confidence != language.No {
		chosen = supported[index]
	}
	return &Notifier{printer: message.NewPrinter(chosen, message.Catalog(builder))}, nil
}

// Text returns the message shown for notice, or an empty string for NoticeNone.
func (n *Notifier) Text(notice domain.Notice) string {
	switch notice.Code {
	case domain.NoticeUnknownLanguage:
		return n.printer.Sprintf(keyUnknownLanguage)
	case domain.NoticeLanguageNotLearned:
		return n.printer.Sprintf(keyLanguageNotLearned)
	case domain.NoticeWaitBeforeSpeaking:
		return n.printer.Sprintf(keyWaitBeforeSpeaking, notice.Remaining.Round(time.Second).String())
	case domain.NoticeLevelRequirement:
		return n.printer.Sprintf(keyLevelRequirement, notice.Level, notice.Kind.String())
	case domain.NoticeGMSilenced:
		return n.printer.Sprintf(keyGMSilenced, notice.Name)
	case domain.NoticePlayerNotFound:
		return n.printer.Sprintf(keyPlayerNotFound, notice.Name)
	case domain.NoticePlayerAmbiguous:
		return n.printer.Sprintf(keyPlayerAmbiguous, notice.Name)
	case domain.NoticeWrongFaction:
		return n.printer.Sprintf(keyWrongFaction)
	case domain.NoticeNotChannelMember:
		return n.printer.Sprintf(keyNotChannelMember, notice.Name)
	case domain.NoticeChannelMuted:
		return n.printer.Sprintf(keyChannelMuted, notice.Name)
	case domain.NoticeChatRestricted:
		return n.printer.Sprintf(restrictionKeys[notice.Reason])
	}
	return ""
}

var restrictionKeys = map[domain.RestrictionReason]string{
	domain.RestrictionCommon:    keyRestrictedCommon,
	domain.RestrictionThrottled: keyRestrictedThrottle,
	domain.RestrictionSquelched: keyRestrictedSquelch,
	domain.RestrictionTrial:     keyRestrictedTrial,
}
