package runtime

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"world-chat/errors"
)

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)

	// Given two word lists sharing a word, with windows line endings and blanks
	files := fstest.MapFS{
		"censored/en.txt":     {Data: []byte("Idiot\r\nmoron\r\n\r\n")},
		"censored/fr.txt":     {Data: []byte("idiot\ncretin\n")},
		"censored/README.md":  {Data: []byte("not a list")},
		"censored/old/de.txt": {Data: []byte("ignored")},
	}

	// When every list is loaded with an extra configured word
	data, err := NewCensoredLoader(files).LoadAll("censored", " Goldseller ")

	// Then words are merged, lowercased and unique
	req.NoError(err)
	req.Equal([]string{"cretin", "goldseller", "idiot", "moron"}, data.Words)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
}

func TestCensoredLoader_Empty(t *testing.T) {
	req := require.New(t)
	files := fstest.MapFS{"censored/en.txt": {Data: []byte("\n\n")}}

	_, err := NewCensoredLoader(files).LoadAll("censored")

	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestCensoredLoader_Embedded_Lists(t *testing.T) {
	req := require.New(t)

	data, err := NewCensoredLoader(censoredFolder).LoadAll("censored")

	req.NoError(err)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
	req.Contains(data.Words, "idiot")
}
