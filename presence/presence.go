// Package presence implements the AFK/DND state machine.
// A participant is Neutral, AFK or DND; never AFK and DND at once.
package presence

import (
	"fmt"

	"world-chat/domain"
	"world-chat/errors"
)

// Toggle applies an AFK or DND request to p and returns the resulting state.
//
// Entering a state records text, or the configured default message when text is empty.
// Sending the active state again with text leaves it; with empty text it is a no-op.
// Entering one state clears the other. AFK cannot be toggled in combat.
func Toggle(policy domain.Policy, p *domain.Participant, kind domain.Kind, text string) (domain.IdleState, error) {
	switch kind {
	case domain.KindAFK:
		if p.IsInCombat() {
			return p.Idle(), errors.ErrInCombat
		}
		return p.UpdateIdle(func(s *domain.IdleState) {
			s.AFK, s.AFKMessage = next(s.AFK, s.AFKMessage, text, policy.DefaultAFKMessage)
			if s.AFK {
				s.DND, s.DNDMessage = false, ""
			}
		}), nil
	case domain.KindDND:
		return p.UpdateIdle(func(s *domain.IdleState) {
			s.DND, s.DNDMessage = next(s.DND, s.DNDMessage, text, policy.DefaultDNDMessage)
			if s.DND {
				s.AFK, s.AFKMessage = false, ""
			}
		}), nil
	}
	return p.Idle(), fmt.Errorf("%w: %s is not a presence kind", errors.ErrUnroutableKind, kind)
}

func next(active bool, message, text, fallback string) (bool, string) {
	switch {
	case !active && text == "":
		return true, fallback
	case !active:
		return true, text
	case text == "":
		return true, message
	default:
		return false, ""
	}
}
