package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testClock() func() time.Time {
	t := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func testHistory(t *testing.T, opts ...HistoryOption) *History {
	t.Helper()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)
	return NewHistory(zaptest.NewLogger(t), storage, append([]HistoryOption{historyWithClock(testClock())}, opts...)...)
}

func TestHistoryCurrent(t *testing.T) {
	ctx := context.Background()
	h := testHistory(t)

	_, err := h.Current(ctx, content.CollectionVideos)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, h.Add(ctx, content.CollectionVideos, []byte(`[1]`)))
	require.NoError(t, h.Add(ctx, content.CollectionVideos, []byte(`[2]`)))

	data, err := h.Current(ctx, content.CollectionVideos)
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(data))

	_, err = h.Current(ctx, content.CollectionPortfolio)
	assert.ErrorIs(t, err, os.ErrNotExist, "collections are kept apart")
}

func TestHistoryCleanup(t *testing.T) {
	ctx := context.Background()
	h := testHistory(t)
	for i := 0; i < 10; i++ {
		require.NoError(t, h.Add(ctx, content.CollectionPortfolio, []byte(fmt.Sprint(i))))
	}
	require.NoError(t, h.Add(ctx, content.CollectionVideos, []byte(`[]`)))

	files, err := h.backups(ctx, content.CollectionPortfolio)
	require.NoError(t, err)
	// keeps the default limit of 2, newest first
	require.Len(t, files, 2)
	assert.Equal(t, "backup-portfolio_items-20240501T120010.000000000Z.json", files[0])
	assert.Equal(t, "backup-portfolio_items-20240501T120009.000000000Z.json", files[1])

	files, err = h.backups(ctx, content.CollectionVideos)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestHistoryWithLimit(t *testing.T) {
	ctx := context.Background()
	h := testHistory(t, HistoryWithLimit(0))
	for i := 0; i < 3; i++ {
		require.NoError(t, h.Add(ctx, content.CollectionPortfolio, []byte(fmt.Sprint(i))))
	}
	files, err := h.backups(ctx, content.CollectionPortfolio)
	require.NoError(t, err)
	assert.Empty(t, files)

	data, err := h.Current(ctx, content.CollectionPortfolio)
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))

	assert.Equal(t, 0, NewHistory(zaptest.NewLogger(t), nil, HistoryWithLimit(-3)).limit)
}
