package moderation

import (
	"log/slog"
	"slices"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator masks configured words in chat text.
// Matching ignores case, punctuation and common leet substitutions.
type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton from the normalized censored words.
// Words that normalize to nothing are skipped.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := lo.FilterMap(censoredWords, func(word string, _ int) ([]rune, bool) {
		p := normalizeRunes([]rune(word))
		return p, len(p) > 0
	})
	patterns = lo.UniqBy(patterns, func(p []rune) string { return string(p) })
	slices.SortFunc(patterns, func(a, b []rune) int { return slices.Compare(a, b) })

	mod := &Moderator{censoredChar: censoredChar, log: log}
	if len(patterns) == 0 {
		return mod, nil
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	mod.matcher = m
	log.Debug("Censor dictionary loaded", "words", len(patterns))
	return mod, nil
}

// Censor replaces every matched word with the censor character, keeping the original spacing.
// It returns the matched dictionary words in order of appearance.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}
		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}
	return string(origRunes), words
}

// normalize keeps the position of each searchable rune in the original text.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	mapping := textMapping{
		normalized: make([]rune, 0, len(origRunes)),
		origIdx:    make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(clean))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps leet characters back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
