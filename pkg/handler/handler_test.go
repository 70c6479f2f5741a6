package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func testStore(t *testing.T) *store.Document {
	t.Helper()
	storage, err := store.NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)
	l := zaptest.NewLogger(t)
	return store.NewDocument(l, store.NewHistory(l, storage))
}

func seed(t *testing.T, s store.Store, collection content.Collection, rows ...content.Row) {
	t.Helper()
	for _, row := range rows {
		_, err := s.Insert(context.Background(), collection, row)
		require.NoError(t, err)
	}
}

func request(t *testing.T, h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeReply[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Reply T `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	return envelope.Reply
}
