//go:generate go run go.uber.org/mock/mockgen -source=chatlog_index.go -destination=../mocks/mock_chatlog_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/search"
	"github.com/google/uuid"

	"world-chat/domain"
)

const (
	indexText   = "text"
	indexSender = "sender"
	indexName   = "sender_name"
	indexKind   = "kind"
	indexLang   = "detected"
	indexAt     = "at"
)

type IChatLogIndex interface {
	Index(records ...ChatRecord) error
	Search(ctx context.Context, query SearchQuery) ([]ChatHit, uint64, error)
}

// SearchQuery selects audited chat by text. Zero Sender and Kind match everything.
type SearchQuery struct {
	Text   string
	Sender domain.GUID
	Kind   domain.Kind
	Page   int
}

type ChatHit struct {
	ID         uuid.UUID
	SenderName string
	Kind       domain.Kind
	Text       string
	Detected   string
	At         time.Time
	Score      float64
}

// ChatLogIndex is the full-text index of audited chat.
type ChatLogIndex struct {
	writer   *bluge.Writer
	log      *slog.Logger
	pageSize int
}

func NewChatLogIndex(writer *bluge.Writer, log *slog.Logger, pageSize int) *ChatLogIndex {
	return &ChatLogIndex{writer: writer, log: log, pageSize: pageSize}
}

// Index adds records in a single batch. Re-indexing a record replaces it.
func (i *ChatLogIndex) Index(records ...ChatRecord) error {
	batch := bluge.NewBatch()
	for _, r := range records {
		doc := bluge.NewDocument(r.ID.String()).
			AddField(bluge.NewTextField(indexText, r.Text).StoreValue().HighlightMatches()).
			AddField(bluge.NewKeywordField(indexSender, strconv.FormatUint(uint64(r.Sender), 10))).
			AddField(bluge.NewKeywordField(indexName, r.SenderName).StoreValue()).
			AddField(bluge.NewKeywordField(indexKind, strconv.Itoa(int(r.Kind))).StoreValue()).
			AddField(bluge.NewKeywordField(indexLang, r.Detected).StoreValue()).
			AddField(bluge.NewDateTimeField(indexAt, r.At).StoreValue().Sortable())
		batch.Update(doc.ID(), doc)
	}
	if err := i.writer.Batch(batch); err != nil {
		return fmt.Errorf("index %d chat records: %w", len(records), err)
	}
	return nil
}

// Search returns one page of hits, best match first, and the total number of matches.
func (i *ChatLogIndex) Search(ctx context.Context, query SearchQuery) ([]ChatHit, uint64, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().AddMust(bluge.NewMatchQuery(query.Text).SetField(indexText))
	if query.Sender != 0 {
		q.AddMust(bluge.NewTermQuery(strconv.FormatUint(uint64(query.Sender), 10)).SetField(indexSender))
	}
	if query.Kind != 0 {
		q.AddMust(bluge.NewTermQuery(strconv.Itoa(int(query.Kind))).SetField(indexKind))
	}

	request := bluge.NewTopNSearch(i.pageSize, q).
		SetFrom(query.Page * i.pageSize).
		WithStandardAggregations()
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	var hits []ChatHit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit, visitErr := toHit(match)
		if visitErr != nil {
			return nil, 0, visitErr
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, 0, err
	}
	total := matches.Aggregations().Count()
	i.log.Debug("Chat log searched", "text", query.Text, "hits", len(hits), "total", total)
	return hits, total, nil
}

func toHit(match *search.DocumentMatch) (ChatHit, error) {
	hit := ChatHit{Score: match.Score}
	var visitErr error
	err := match.VisitStoredFields(func(field string, value []byte) bool {
		switch field {
		case "_id":
			hit.ID, visitErr = uuid.ParseBytes(value)
		case indexText:
			hit.Text = string(value)
		case indexName:
			hit.SenderName = string(value)
		case indexLang:
			hit.Detected = string(value)
		case indexKind:
			var kind int
			kind, visitErr = strconv.Atoi(string(value))
			hit.Kind = domain.Kind(kind)
		case indexAt:
			hit.At, visitErr = bluge.DecodeDateTime(value)
		}
		return visitErr == nil
	})
	if err != nil {
		return ChatHit{}, err
	}
	return hit, visitErr
}
