// Package language computes the language a chat message is transmitted in.
package language

import (
	"fmt"

	"world-chat/domain"
	"world-chat/errors"
)

// Speaker is the part of a participant the resolver looks at.
type Speaker interface {
	IsGameMaster() bool
	HasSkill(skill uint32) bool
	HasLanguageOverride(id domain.LanguageID) bool
	ForcedLanguage() (domain.LanguageID, bool)
}

type Resolver struct {
	languages domain.LanguageTable
}

func NewResolver(languages domain.LanguageTable) *Resolver {
	return &Resolver{languages: languages}
}

// Resolve returns the effective language of a message of the given kind.
// Failures are domain.Rejection values carrying the notice owed to the sender.
func (r *Resolver) Resolve(policy domain.Policy, sender Speaker, kind domain.Kind, requested domain.LanguageID) (domain.LanguageID, error) {
	if !kind.CarriesLanguage() {
		return domain.LangUniversal, nil
	}

	descriptor, ok := r.languages.Lookup(requested)
	if !ok {
		return 0, domain.Reject(fmt.Errorf("%w: %d", errors.ErrUnknownLanguage, requested), domain.UnknownLanguage())
	}
	if descriptor.RequiresSkill() && !sender.HasSkill(descriptor.SkillID) && !sender.HasLanguageOverride(requested) {
		return 0, domain.Reject(fmt.Errorf("%w: %d", errors.ErrLanguageNotLearned, requested), domain.LanguageNotLearned())
	}

	if requested == domain.LangAddon {
		return requested, nil
	}
	// Game masters speak universal and mod-language effects do not apply to them.
	if sender.IsGameMaster() {
		return domain.LangUniversal, nil
	}

	effective := requested
	switch {
	case policy.CrossFactionChat:
		effective = domain.LangUniversal
	case kind.IsGroupScoped() && policy.CrossFactionGroup:
		effective = domain.LangUniversal
	case kind.IsGuildScoped() && policy.CrossFactionGuild:
		effective = domain.LangUniversal
	}

	if forced, ok := sender.ForcedLanguage(); ok {
		return forced, nil
	}
	return effective, nil
}
