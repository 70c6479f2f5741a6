package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/store/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testREST(t *testing.T) (*REST, *mock.Server) {
	t.Helper()
	server := mock.NewServer(t)
	r, err := NewREST(zaptest.NewLogger(t), server.URL, "anon-key", RESTWithHTTPClient(server.Client()))
	require.NoError(t, err)
	return r, server
}

func TestNewRESTInvalidURL(t *testing.T) {
	_, err := NewREST(zaptest.NewLogger(t), "not a url", "")
	assert.Error(t, err)
}

func TestRESTSelect(t *testing.T) {
	ctx := context.Background()
	r, server := testREST(t)
	server.SetRows(string(content.CollectionPortfolio), mock.PortfolioRows()...)

	rows, err := r.Select(ctx, content.CollectionPortfolio, Published())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(rows))

	rows, err = r.Select(ctx, content.CollectionPortfolio, Published().Eq(content.FieldIsFeatured, true).WithLimit(6))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(rows))

	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "/rest/v1/portfolio_items?is_featured=eq.true&is_published=eq.true&limit=6&order=display_order.asc&select=%2A", requests[1])
}

func TestRESTSelectError(t *testing.T) {
	ctx := context.Background()
	r, server := testREST(t)
	server.Fail(string(content.CollectionVideos), http.StatusServiceUnavailable)

	_, err := r.Select(ctx, content.CollectionVideos, Published())
	require.Error(t, err)

	var restErr *RESTError
	require.ErrorAs(t, err, &restErr)
	assert.Equal(t, http.StatusServiceUnavailable, restErr.Status)
	assert.Equal(t, "mock failure", restErr.Message)
}

func TestRESTWrite(t *testing.T) {
	ctx := context.Background()
	r, server := testREST(t)
	c := content.CollectionContactSubmissions

	row, err := r.Insert(ctx, c, content.Row{"name": "Ada", "is_read": false})
	require.NoError(t, err)
	assert.Equal(t, "mock-1", row.ID())

	row, err = r.Update(ctx, c, "mock-1", content.Row{"is_read": true})
	require.NoError(t, err)
	assert.True(t, row.Bool(content.FieldIsRead))

	_, err = r.Update(ctx, c, "missing", content.Row{"is_read": true})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Delete(ctx, c, "mock-1"))
	assert.ErrorIs(t, r.Delete(ctx, c, "mock-1"), ErrNotFound)
	assert.Empty(t, server.Rows(string(c)))

	require.NoError(t, r.Ping(ctx))
	require.NoError(t, r.Close())
}

func TestRESTMalformedID(t *testing.T) {
	ctx := context.Background()
	r, server := testREST(t)
	c := content.CollectionPortfolio
	server.FailWithCode(string(c), http.StatusBadRequest, "22P02")

	rows, err := r.Select(ctx, c, NewQuery().Eq(content.FieldID, "abc"))
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = Get(ctx, r, c, "abc")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Update(ctx, c, "abc", content.Row{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, c, "abc"), ErrNotFound)

	_, err = r.Insert(ctx, c, content.Row{content.FieldID: "abc", "title": "x"})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSelectParams(t *testing.T) {
	q := NewQuery().Eq("brand", nil).Eq(content.FieldDisplayOrder, float64(2)).OrderBy(content.FieldCreatedAt, true)
	params := selectParams(q)
	assert.Equal(t, "is.null", params.Get("brand"))
	assert.Equal(t, "eq.2", params.Get(content.FieldDisplayOrder))
	assert.Equal(t, "created_at.desc", params.Get("order"))
	assert.Empty(t, params.Get("limit"))
	assert.Equal(t, "*", selectParams(nil).Get("select"))
}
