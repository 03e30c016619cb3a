package repositories

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const censorPrefix = "censor:"

// CensorDictionary keeps operator-managed censored words. Words live in the keys.
type CensorDictionary struct {
	db *badger.DB
}

func NewCensorDictionary(db *badger.DB) CensorDictionary {
	return CensorDictionary{db: db}
}

// Add stores words, lowercased. Blank words are skipped.
func (d CensorDictionary) Add(words ...string) error {
	wb := d.db.NewWriteBatch()
	defer wb.Cancel()
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			if err := wb.Set([]byte(censorPrefix+w), nil); err != nil {
				return err
			}
		}
	}
	return wb.Flush()
}

func (d CensorDictionary) Remove(word string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(censorPrefix + strings.ToLower(strings.TrimSpace(word))))
	})
}

// Words returns every stored word in lexical order.
func (d CensorDictionary) Words() ([]string, error) {
	var words []string
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(censorPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return words, err
}
