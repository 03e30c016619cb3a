package moderation

import (
	"fmt"
	"log/slog"
	"time"

	"world-chat/domain"
	"world-chat/errors"
)

// Chain runs the ordered eligibility gates on a chat message.
// The first failing gate ends the chain.
type Chain struct {
	moderator *Moderator
	log       *slog.Logger
	now       func() time.Time
}

// NewChain returns a chain. moderator may be nil when no words are censored.
func NewChain(moderator *Moderator, log *slog.Logger) *Chain {
	return &Chain{moderator: moderator, log: log, now: time.Now}
}

// WithClock replaces the wall clock used for mute and flood checks.
func (c *Chain) WithClock(now func() time.Time) *Chain {
	c.now = now
	return c
}

// Filter returns the text to deliver, or the reason the message must not be delivered.
// Rejections that owe the sender a notice are domain.Rejection values.
func (c *Chain) Filter(policy domain.Policy, sender *domain.Participant, kind domain.Kind, language domain.LanguageID, text string) (string, error) {
	now := c.now()
	addon := language == domain.LangAddon

	if !addon {
		var err error
		if text, err = c.normalize(policy, sender, text); err != nil {
			return "", err
		}
	}
	if text == "" {
		return "", errors.ErrEmptyText
	}

	if !addon && !sender.CanSpeak(now) {
		remaining := sender.MuteRemaining(now)
		return "", domain.Reject(fmt.Errorf("%w: %s left", errors.ErrMuted, remaining), domain.WaitBeforeSpeaking(remaining))
	}
	if kind != domain.KindWhisper && sender.IsSilenced() {
		return "", domain.Reject(errors.ErrSilenced, domain.GMSilenced(sender.Name))
	}
	if addon && kind == domain.KindWhisper && !sender.AllowWhisper(now, policy.WhisperFloodInterval, policy.WhisperFloodBurst) {
		return "", domain.Reject(errors.ErrFloodControl, domain.ChatRestricted(domain.RestrictionThrottled))
	}
	return text, nil
}

func (c *Chain) normalize(policy domain.Policy, sender *domain.Participant, text string) (string, error) {
	if policy.FakeMessagePreventing {
		text = StripInvisible(text)
	}
	if policy.StrictLinkCheckingSeverity > LinkCheckOff && sender.IsPlayerAccount() {
		if err := ValidateLinks(text, policy.StrictLinkCheckingSeverity); err != nil {
			c.log.Error("Invalid link in chat message", "player", sender.Name, "guid", sender.ID, "text", text, "error", err)
			if policy.StrictLinkCheckingKick {
				if session := sender.Session(); session != nil {
					session.Kick("invalid link content")
				}
				return "", fmt.Errorf("%w: %w", errors.ErrSessionKicked, err)
			}
			return "", err
		}
	}
	if c.moderator != nil {
		censored, words := c.moderator.Censor(text)
		if len(words) > 0 {
			c.log.Debug("Censored chat message", "player", sender.Name, "words", words)
		}
		text = censored
	}
	return text, nil
}
