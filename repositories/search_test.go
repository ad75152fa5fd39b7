package repositories

import (
	"context"
	"cx-chat/domain/search"
	"cx-chat/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestSearchRepository(t *testing.T) *SearchRepository {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewSearchRepository(writer, slog.Default())
}

func TestSearchRepository_FindsByKeyword(t *testing.T) {
	req := require.New(t)
	repo := newTestSearchRepository(t)
	now := time.Now().UTC()

	req.NoError(repo.Index(ArchivedMessage{ID: uuid.New(), Session: 1, Content: "I want a refund please", At: now}))
	req.NoError(repo.Index(ArchivedMessage{ID: uuid.New(), Session: 1, Content: "hello there", At: now}))

	hits, err := repo.Search(context.Background(), search.NewQuery("/find refund"))

	req.NoError(err)
	req.Len(hits, 1)
	req.Contains(hits[0].Content, "refund")
	req.EqualValues(1, hits[0].Session)
}

func TestSearchRepository_ScopedToSession(t *testing.T) {
	req := require.New(t)
	repo := newTestSearchRepository(t)
	now := time.Now().UTC()

	req.NoError(repo.Index(ArchivedMessage{ID: uuid.New(), Session: 1, Content: "refund in session one", At: now}))
	req.NoError(repo.Index(ArchivedMessage{ID: uuid.New(), Session: 2, Content: "refund in session two", At: now}))

	hits, err := repo.Search(context.Background(), search.NewQuery("/find refund --session 2"))

	req.NoError(err)
	req.Len(hits, 1)
	req.EqualValues(2, hits[0].Session)
}

func TestSearchRepository_EmptyTermsRejected(t *testing.T) {
	req := require.New(t)
	repo := newTestSearchRepository(t)

	_, err := repo.Search(context.Background(), search.NewQuery("/find --session 1"))

	req.ErrorIs(err, errors.ErrEmptySearch)
}
