package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/store"
	"github.com/foomo/showcase/pkg/store/mock"
	"github.com/foomo/showcase/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testToken = "s3cret"

var bearer = []string{"Authorization", "Bearer " + testToken}

func testAdmin(t *testing.T, token string) http.Handler {
	t.Helper()
	now := testNow
	return NewAdmin(zaptest.NewLogger(t), testStore(t), token, adminWithClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	}))
}

func TestAdminUnauthorized(t *testing.T) {
	h := testAdmin(t, testToken)
	for _, header := range [][]string{
		nil,
		{"Authorization", "Bearer wrong"},
		{"Authorization", testToken},
	} {
		rec := request(t, h, http.MethodGet, "/admin/videos", "", header...)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, responses.ErrorCodeUnauthorized, decodeReply[responses.Error](t, rec).Code)
	}

	disabled := testAdmin(t, "")
	rec := request(t, disabled, http.MethodGet, "/admin/videos", "", "Authorization", "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminCRUD(t *testing.T) {
	h := testAdmin(t, testToken)

	rec := request(t, h, http.MethodPost, "/admin/videos",
		`{"title":"Tutorial","category":"Tutorials","thumbnail_url":"/t.jpg","embed_url":"https://example.com/e","display_order":2,"is_published":false}`,
		bearer...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeReply[content.Row](t, rec)
	id := created.ID()
	require.NotEmpty(t, id)
	assert.NotEmpty(t, created[content.FieldCreatedAt])

	rec = request(t, h, http.MethodPost, "/admin/videos", `{"display_order":"first"}`, bearer...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request(t, h, http.MethodPut, "/admin/videos/"+id, `{"title":"Renamed","id":"hijack"}`, bearer...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeReply[content.Row](t, rec)
	assert.Equal(t, "Renamed", updated["title"])
	assert.Equal(t, id, updated.ID())

	rec = request(t, h, http.MethodPost, "/admin/videos/"+id+"/publish", "", bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeReply[content.Row](t, rec).Bool(content.FieldIsPublished))

	rec = request(t, h, http.MethodPost, "/admin/videos/"+id+"/publish", "", bearer...)
	assert.False(t, decodeReply[content.Row](t, rec).Bool(content.FieldIsPublished))

	rec = request(t, h, http.MethodGet, "/admin/videos", "", bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeReply[[]content.Row](t, rec), 1)

	rec = request(t, h, http.MethodDelete, "/admin/videos/"+id, "", bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decodeReply[responses.Deleted](t, rec).ID)

	rec = request(t, h, http.MethodDelete, "/admin/videos/"+id, "", bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, responses.ErrorCodeNotFound, decodeReply[responses.Error](t, rec).Code)

	rec = request(t, h, http.MethodGet, "/admin/videos", "", bearer...)
	assert.Equal(t, "{\"reply\":[]}", rec.Body.String())
}

func TestAdminErrors(t *testing.T) {
	h := testAdmin(t, testToken)

	rec := request(t, h, http.MethodGet, "/admin/users", "", bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, responses.ErrorCodeUnknownCollection, decodeReply[responses.Error](t, rec).Code)

	rec = request(t, h, http.MethodPut, "/admin/portfolio_items/missing", `{"title":"x"}`, bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(t, h, http.MethodPost, "/admin/portfolio_items/missing/publish", "", bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(t, h, http.MethodPost, "/admin/contact_submissions/any/publish", "", bearer...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminMalformedID(t *testing.T) {
	server := mock.NewServer(t)
	server.FailWithCode(string(content.CollectionVideos), http.StatusBadRequest, "22P02")
	l := zaptest.NewLogger(t)
	s, err := store.NewREST(l, server.URL, "", store.RESTWithHTTPClient(server.Client()))
	require.NoError(t, err)
	h := NewAdmin(l, s, testToken)

	rec := request(t, h, http.MethodPost, "/admin/videos", `{"id":"not-a-uuid","title":"Tutorial"}`, bearer...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, responses.ErrorCodeInvalidInput, decodeReply[responses.Error](t, rec).Code)

	rec = request(t, h, http.MethodPut, "/admin/videos/not-a-uuid", `{"title":"x"}`, bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(t, h, http.MethodDelete, "/admin/videos/not-a-uuid", "", bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(t, h, http.MethodPost, "/admin/videos/not-a-uuid/publish", "", bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminMessages(t *testing.T) {
	h := testAdmin(t, testToken)

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		rec := request(t, h, http.MethodPost, "/admin/contact_submissions",
			`{"name":"`+name+`","email":"a@b.c","subject":"s","message":"m"}`, bearer...)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		row := decodeReply[content.Row](t, rec)
		assert.Equal(t, false, row[content.FieldIsRead])
		ids = append(ids, row.ID())
	}

	// newest first
	rec := request(t, h, http.MethodGet, "/admin/contact_submissions", "", bearer...)
	var names []interface{}
	for _, row := range decodeReply[[]content.Row](t, rec) {
		names = append(names, row["name"])
	}
	assert.Equal(t, []interface{}{"third", "second", "first"}, names)

	rec = request(t, h, http.MethodPost, "/admin/contact_submissions/"+ids[1]+"/read", "", bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeReply[content.Row](t, rec).Bool(content.FieldIsRead))

	rec = request(t, h, http.MethodPost, "/admin/contact_submissions/missing/read", "", bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
