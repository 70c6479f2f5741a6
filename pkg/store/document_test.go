package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/foomo/showcase/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testDocument(t *testing.T) *Document {
	t.Helper()
	var n int
	return NewDocument(zaptest.NewLogger(t), testHistory(t), DocumentWithIDGenerator(func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}))
}

func ids(rows []content.Row) []string {
	ret := make([]string, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.ID())
	}
	return ret
}

func TestDocumentStableOrder(t *testing.T) {
	ctx := context.Background()
	d := testDocument(t)
	for _, r := range []struct {
		id    string
		order int
	}{{"3", 5}, {"1", 1}, {"2", 1}} {
		_, err := d.Insert(ctx, content.CollectionPortfolio, content.Row{
			"id": r.id, "display_order": r.order, "is_published": true,
		})
		require.NoError(t, err)
	}

	rows, err := d.Select(ctx, content.CollectionPortfolio, Published())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(rows))
}

func TestDocumentSelect(t *testing.T) {
	ctx := context.Background()
	d := testDocument(t)

	rows, err := d.Select(ctx, content.CollectionVideos, Published())
	require.NoError(t, err)
	assert.Empty(t, rows, "missing document reads as empty collection")

	for i, published := range []bool{true, false, true, true} {
		_, err := d.Insert(ctx, content.CollectionVideos, content.Row{
			"title": fmt.Sprint("video ", i), "display_order": 10 - i, "is_published": published,
		})
		require.NoError(t, err)
	}

	rows, err = d.Select(ctx, content.CollectionVideos, Published())
	require.NoError(t, err)
	assert.Equal(t, []string{"gen-4", "gen-3", "gen-1"}, ids(rows))

	rows, err = d.Select(ctx, content.CollectionVideos, Published().WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"gen-4", "gen-3"}, ids(rows))

	rows, err = d.Select(ctx, content.CollectionVideos, NewQuery().OrderBy(content.FieldDisplayOrder, true))
	require.NoError(t, err)
	assert.Equal(t, []string{"gen-1", "gen-2", "gen-3", "gen-4"}, ids(rows))

	_, err = d.Select(ctx, content.Collection("users"), nil)
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestDocumentWrite(t *testing.T) {
	ctx := context.Background()
	d := testDocument(t)
	c := content.CollectionCollaborations

	row, err := d.Insert(ctx, c, content.Row{"brand": "Glossier", "is_published": false})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", row.ID())

	_, err = d.Insert(ctx, c, content.Row{"id": "gen-1"})
	assert.Error(t, err, "duplicate id")

	row, err = d.Update(ctx, c, "gen-1", content.Row{"is_published": true, "id": "other"})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", row.ID())
	assert.Equal(t, "Glossier", row["brand"])
	assert.True(t, row.Bool(content.FieldIsPublished))

	got, err := Get(ctx, d, c, "gen-1")
	require.NoError(t, err)
	assert.Equal(t, row, got)

	_, err = d.Update(ctx, c, "missing", content.Row{"brand": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, d.Delete(ctx, c, "gen-1"))
	assert.ErrorIs(t, d.Delete(ctx, c, "gen-1"), ErrNotFound)

	_, err = Get(ctx, d, c, "gen-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, d.Ping(ctx))
	require.NoError(t, d.Close())
}

func TestDocumentInsertDoesNotAliasInput(t *testing.T) {
	ctx := context.Background()
	d := testDocument(t)
	in := content.Row{"title": "a"}
	_, err := d.Insert(ctx, content.CollectionVideos, in)
	require.NoError(t, err)
	_, ok := in["id"]
	assert.False(t, ok)
}
