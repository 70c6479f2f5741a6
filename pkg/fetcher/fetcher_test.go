package fetcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// scriptedStore answers Select calls in turn and records the queries
type scriptedStore struct {
	store.Store
	mu      sync.Mutex
	answers []answer
	queries []*store.Query
}

type answer struct {
	rows []content.Row
	err  error
}

func (s *scriptedStore) Select(_ context.Context, _ content.Collection, q *store.Query) ([]content.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if len(s.queries) > len(s.answers) {
		return nil, errors.New("unexpected query")
	}
	a := s.answers[len(s.queries)-1]
	return a.rows, a.err
}

func portfolioRows(ids ...string) []content.Row {
	rows := make([]content.Row, 0, len(ids))
	for i, id := range ids {
		rows = append(rows, content.Row{
			"id": id, "title": fmt.Sprint("item ", id), "category": "Beauty",
			"image_url": "/x.jpg", "display_order": float64(i), "is_published": true,
		})
	}
	return rows
}

func featuredRequest() Request[content.PortfolioItem] {
	return Request[content.PortfolioItem]{
		Collection: content.CollectionPortfolio,
		Featured:   true,
		Limit:      6,
		Fallback:   content.FallbackFeaturedWork,
	}
}

func testFetcher(t *testing.T, answers ...answer) (*Fetcher, *scriptedStore) {
	t.Helper()
	s := &scriptedStore{answers: answers}
	return New(zaptest.NewLogger(t), s), s
}

func TestFetchLive(t *testing.T) {
	f, s := testFetcher(t, answer{rows: portfolioRows("a", "b")})
	res := Fetch(context.Background(), f, featuredRequest())

	assert.Equal(t, SourceLive, res.Source)
	require.Len(t, res.Items, 2, "fewer rows than the limit are served as they are")
	assert.Equal(t, "a", res.Items[0].ID)
	assert.Equal(t, "b", res.Items[1].ID)

	require.Len(t, s.queries, 1)
	q := s.queries[0]
	assert.Equal(t, 6, q.Limit)
	assert.Equal(t, &store.Order{Field: content.FieldDisplayOrder}, q.Order)
	assert.Equal(t, []store.Filter{
		{Field: content.FieldIsPublished, Value: true},
		{Field: content.FieldIsFeatured, Value: true},
	}, q.Filters)
}

func TestFetchUnfeaturedRetry(t *testing.T) {
	for name, first := range map[string]answer{
		"empty": {rows: []content.Row{}},
		"error": {err: errors.New("connection refused")},
	} {
		t.Run(name, func(t *testing.T) {
			f, s := testFetcher(t, first, answer{rows: portfolioRows("c")})
			res := Fetch(context.Background(), f, featuredRequest())

			assert.Equal(t, SourceLiveUnfeatured, res.Source)
			require.Len(t, res.Items, 1)
			assert.Equal(t, "c", res.Items[0].ID)

			require.Len(t, s.queries, 2)
			retry := s.queries[1]
			assert.Equal(t, []store.Filter{{Field: content.FieldIsPublished, Value: true}}, retry.Filters)
			assert.Equal(t, 6, retry.Limit)
			assert.Equal(t, s.queries[0].Order, retry.Order)
		})
	}
}

func TestFetchFallback(t *testing.T) {
	network := errors.New("network error")
	f, s := testFetcher(t, answer{err: network}, answer{err: network})
	res := Fetch(context.Background(), f, featuredRequest())

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, content.FallbackFeaturedWork(), res.Items)
	require.Len(t, res.Items, 6)
	for i, item := range res.Items {
		assert.Equal(t, fmt.Sprint(i+1), item.ID)
	}
	assert.Len(t, s.queries, 2)
}

func TestFetchFallbackWithoutRetry(t *testing.T) {
	for name, first := range map[string]answer{
		"empty": {rows: nil},
		"error": {err: errors.New("boom")},
	} {
		t.Run(name, func(t *testing.T) {
			f, s := testFetcher(t, first)
			res := Fetch(context.Background(), f, Request[content.Video]{
				Collection: content.CollectionVideos,
				Fallback:   content.FallbackVideos,
			})
			assert.Equal(t, SourceFallback, res.Source)
			assert.Equal(t, content.FallbackVideos(), res.Items)
			assert.Len(t, s.queries, 1, "only featured requests are retried")
		})
	}
}

func TestFetchDecodeFailureFallsBack(t *testing.T) {
	f, _ := testFetcher(t, answer{rows: []content.Row{{"id": "x", "display_order": "not a number"}}})
	res := Fetch(context.Background(), f, Request[content.Collaboration]{
		Collection: content.CollectionCollaborations,
		Fallback:   content.FallbackCollaborations,
	})
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, content.FallbackCollaborations(), res.Items)
}

func TestFetchFallbackIsACopy(t *testing.T) {
	f, _ := testFetcher(t, answer{err: errors.New("down")}, answer{err: errors.New("down")})
	res := Fetch(context.Background(), f, Request[content.PortfolioItem]{
		Collection: content.CollectionPortfolio,
		Fallback:   content.FallbackPortfolio,
	})
	res.Items[0].Title = "changed"
	assert.NotEqual(t, "changed", content.FallbackPortfolio()[0].Title)
}

func TestFetchDocumentStoreOrder(t *testing.T) {
	ctx := context.Background()
	storage, err := store.NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)
	l := zaptest.NewLogger(t)
	doc := store.NewDocument(l, store.NewHistory(l, storage))
	for _, r := range []struct {
		id    string
		order int
	}{{"3", 5}, {"1", 1}, {"2", 1}} {
		_, err := doc.Insert(ctx, content.CollectionPortfolio, content.Row{
			"id": r.id, "title": r.id, "category": "Beauty", "display_order": r.order, "is_published": true,
		})
		require.NoError(t, err)
	}

	res := Fetch(ctx, New(l, doc), Request[content.PortfolioItem]{
		Collection: content.CollectionPortfolio,
		Fallback:   content.FallbackPortfolio,
	})
	require.Equal(t, SourceLive, res.Source)
	var got []string
	for _, item := range res.Items {
		got = append(got, item.ID)
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
}
