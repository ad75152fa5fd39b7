//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_repository.go -package=mocks
package repositories

import (
	"context"
	"cx-chat/domain/search"
	"cx-chat/errors"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"
)

type ISearchRepository interface {
	Index(message ArchivedMessage) error
	Search(ctx context.Context, query *search.Query) ([]MessageHit, error)
}

// MessageHit is one transcript search result.
type MessageHit struct {
	ID      string
	Session int64
	Content string
}

// SearchRepository maintains a Bluge full-text index over archived
// messages, allowing operators to search transcripts by keyword.
type SearchRepository struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchRepository(writer *bluge.Writer, log *slog.Logger) *SearchRepository {
	return &SearchRepository{writer: writer, log: log}
}

// Index adds (or replaces) one message in the index. The session id is a
// keyword field so searches can be scoped to a single transcript.
func (s *SearchRepository) Index(message ArchivedMessage) error {
	doc := bluge.NewDocument(message.ID.String())
	doc.AddField(bluge.NewTextField("content", message.Content).StoreValue())
	doc.AddField(bluge.NewKeywordField("session", strconv.FormatInt(message.Session, 10)).StoreValue())
	doc.AddField(bluge.NewDateTimeField("at", message.At))

	return s.writer.Update(doc.ID(), doc)
}

// Search runs a parsed query against the index and resolves stored fields
// into hits, most relevant first.
func (s *SearchRepository) Search(ctx context.Context, query *search.Query) ([]MessageHit, error) {
	if query.Terms == "" {
		return nil, errors.ErrEmptySearch
	}

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query.Terms).SetField("content"))
	if query.Session != 0 {
		boolean.AddMust(bluge.NewTermQuery(strconv.FormatInt(query.Session, 10)).SetField("session"))
	}

	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(query.Limit, boolean))
	if err != nil {
		return nil, err
	}

	var hits []MessageHit
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit MessageHit
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID = string(value)
			case "content":
				hit.Content = string(value)
			case "session":
				hit.Session, _ = strconv.ParseInt(string(value), 10, 64)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}
