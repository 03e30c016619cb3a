package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxNameLength bounds a character name including an optional realm suffix.
const MaxNameLength = 48

// NormalizeName puts a character name into its canonical "Name" form.
// It reports false when the input cannot be a character name.
func NormalizeName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return "", false
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", false
	}
	// A Caser keeps state between calls and cannot be shared.
	return cases.Title(language.Und).String(name), true
}

// TextEmote is one entry of the text emote catalog.
type TextEmote struct {
	ID   uint32
	Name string
}

type TextEmoteTable map[uint32]TextEmote

func (t TextEmoteTable) Lookup(id uint32) (TextEmote, bool) {
	e, ok := t[id]
	return e, ok
}

func DefaultTextEmotes() TextEmoteTable {
	emotes := []TextEmote{
		{1, "agree"}, {2, "amaze"}, {3, "angry"}, {5, "applaud"},
		{17, "bow"}, {21, "cheer"}, {22, "chicken"}, {34, "dance"},
		{41, "flex"}, {60, "kiss"}, {77, "rude"}, {78, "salute"},
		{84, "shy"}, {86, "sleep"}, {87, "sit"}, {101, "wave"},
	}
	table := make(TextEmoteTable, len(emotes))
	for _, e := range emotes {
		table[e.ID] = e
	}
	return table
}
