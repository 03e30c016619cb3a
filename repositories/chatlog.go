//go:generate go run go.uber.org/mock/mockgen -source=chatlog.go -destination=../mocks/mock_chatlog_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"world-chat/domain"
	"world-chat/domain/event"
)

const chatPrefix = "chat:"

type IChatLogRepository interface {
	Store(record ChatRecord) error
	BySender(sender domain.GUID, cursor *string) ([]ChatRecord, *string, error)
}

// ChatRecord is one audited chat event as kept on disk.
type ChatRecord struct {
	ID         uuid.UUID
	Sender     domain.GUID
	SenderName string
	Kind       domain.Kind
	Language   domain.LanguageID
	Text       string
	Prefix     string
	Audience   event.Audience
	Target     string
	Recipients int
	// Detected is the ISO 639-1 code of the natural language of Text, when it could be detected.
	Detected string
	At       time.Time
}

type ChatLogRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

// NewChatLogRepository returns a repository reading at most limit records per page. A nil limit reads everything.
func NewChatLogRepository(db *badger.DB, log *slog.Logger, limit *int) ChatLogRepository {
	return ChatLogRepository{db: db, log: log, limit: limit}
}

// Store persists a record in BadgerDB.
// The key is formatted as "chat:{sender}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting per sender using 19-digit zero padding (lexicographical order).
//  2. Keep two records of the same nanosecond apart thanks to the UUID.
func (r ChatLogRepository) Store(record ChatRecord) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(record), marshalRecord(record))
	})
}

// BySender pages through the records of a sender, newest first.
// The returned cursor resumes right after the last record read.
func (r ChatLogRepository) BySender(sender domain.GUID, cursor *string) ([]ChatRecord, *string, error) {
	var values [][]byte
	var lastKey string
	prefixStr := fmt.Sprintf("%s%d:", chatPrefix, sender)
	prefix := []byte(prefixStr)

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Start after the newest possible timestamp then walk back in time
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limit != nil && len(values) == *r.limit {
				r.log.Debug("Maximum of chat records reached", "limit", *r.limit)
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	records := make([]ChatRecord, 0, len(values))
	for _, v := range values {
		record, err := UnmarshalRecord(v)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)
	}
	return records, &lastKey, nil
}

// Count returns the number of stored records.
func (r ChatLogRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		prefix := []byte(chatPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func recordKey(record ChatRecord) []byte {
	return []byte(fmt.Sprintf("%s%d:%019d:%s", chatPrefix, record.Sender, record.At.UnixNano(), record.ID))
}
