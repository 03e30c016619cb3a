package runtime

import (
	"bufio"
	"bytes"
	"io/fs"
	"path"
	"sort"
	"strings"

	"world-chat/errors"
)

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// CensoredLoader reads blacklisted words, one per line, from the .txt files of a directory.
type CensoredLoader struct {
	fs fs.FS
}

func NewCensoredLoader(f fs.FS) *CensoredLoader {
	return &CensoredLoader{fs: f}
}

// LoadAll parses every .txt file of dir ("fr.txt" is the "fr" list) and merges extra words in.
// Words are lowercased and deduplicated; blank lines are skipped.
func (l *CensoredLoader) LoadAll(dir string, extra ...string) (*CensoredData, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})
	add := func(word string) {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
			uniqueWords[word] = struct{}{}
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// ⚠️Don't use strings.Split, the scanner copes with \r\n
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			add(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	for _, w := range extra {
		add(w)
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	sort.Strings(words)

	return &CensoredData{Words: words, Languages: languages}, nil
}
