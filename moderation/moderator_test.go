package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"scam", "botting", "gankers"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "Buy gold, no scam here",
			expected: "Buy gold, no **** here",
			words:    []string{"scam"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "scam scam scam",
			expected: "**** **** ****",
			words:    []string{"scam", "scam", "scam"},
		},
		{
			name: "Leet speak and internal punctuation",
			// 5 (index 8) . c . 4 . m (index 14) -> 7 characters
			input:    "Look at 5.c.4.m !",
			expected: "Look at ******* !",
			words:    []string{"scam"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "B-O-T-T-I-N-G is for G.A.N.K.E.R.S",
			expected: "************* is for *************",
			words:    []string{"botting", "gankers"},
		},
		{
			name:     "Accents and special characters (UTF-8)",
			input:    "Un été sans scam",
			expected: "Un été sans ****",
			words:    []string{"scam"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "I hate botting!",
			expected: "I hate *******!",
			words:    []string{"botting"},
		},
		{
			name:     "Nothing to censor",
			input:    "World-Chat is amazing",
			expected: "World-Chat is amazing",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "scam"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then the sentence is censored
	content, words := mod.Censor("The scam is safe")
	req.Equal("The **** is safe", content)
	req.Equal([]string{"scam"}, words)

	// Then real noise is uncensored
	content, words = mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestModerator_Empty_Dictionary(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator(nil, replacementChar, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	content, words := mod.Censor("anything goes")
	req.Equal("anything goes", content)
	req.Nil(words)
}
