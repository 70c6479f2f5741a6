package store

import (
	"testing"

	"github.com/foomo/showcase/content"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	sql, args, err := buildSelect(content.CollectionPortfolio, Published().Eq(content.FieldIsFeatured, true).WithLimit(6))
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT row_to_json(t) FROM "portfolio_items" t WHERE t."is_published" = $1 AND t."is_featured" = $2 ORDER BY t."display_order" ASC, t.created_at ASC LIMIT 6`,
		sql,
	)
	assert.Equal(t, []interface{}{true, true}, args)

	sql, args, err = buildSelect(content.CollectionContactSubmissions, NewQuery().Eq("company", nil))
	require.NoError(t, err)
	assert.Equal(t, `SELECT row_to_json(t) FROM "contact_submissions" t WHERE t."company" IS NULL`, sql)
	assert.Empty(t, args)

	_, _, err = buildSelect(content.CollectionVideos, NewQuery().Eq(`title"; DROP TABLE videos; --`, "x"))
	assert.Error(t, err)

	_, _, err = buildSelect(content.Collection("pg_user"), nil)
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestBuildInsert(t *testing.T) {
	sql, args, err := buildInsert(content.CollectionVideos, content.Row{
		"title": "Tutorial", "display_order": float64(3), "id": "",
	})
	require.NoError(t, err)
	assert.Equal(t,
		`WITH t AS (INSERT INTO "videos" ("display_order", "title") VALUES ($1, $2) RETURNING *) SELECT row_to_json(t) FROM t`,
		sql,
	)
	assert.Equal(t, []interface{}{int64(3), "Tutorial"}, args)

	sql, args, err = buildInsert(content.CollectionVideos, content.Row{})
	require.NoError(t, err)
	assert.Equal(t, `WITH t AS (INSERT INTO "videos" DEFAULT VALUES RETURNING *) SELECT row_to_json(t) FROM t`, sql)
	assert.Nil(t, args)
}

func TestBuildUpdate(t *testing.T) {
	sql, args, err := buildUpdate(content.CollectionCollaborations, "abc", content.Row{
		"is_published": true, "brand": "Fenty", "id": "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t,
		`WITH t AS (UPDATE "collaborations" SET "brand" = $1, "is_published" = $2 WHERE "id" = $3 RETURNING *) SELECT row_to_json(t) FROM t`,
		sql,
	)
	assert.Equal(t, []interface{}{"Fenty", true, "abc"}, args)
}

func TestSQLArg(t *testing.T) {
	assert.Equal(t, int64(4), sqlArg(float64(4)))
	assert.InDelta(t, 4.5, sqlArg(4.5), 0)
	assert.Equal(t, "x", sqlArg("x"))
}

func TestMigrations(t *testing.T) {
	names, err := Migrations()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_collections.up.sql", "002_display_order_indexes.up.sql"}, names)
}

func TestWriteError(t *testing.T) {
	invalid := errors.Wrap(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}, "query")

	assert.Equal(t, ErrNotFound, writeError(invalid, content.CollectionVideos, "update", true))
	assert.Equal(t, ErrNotFound, writeError(invalid, content.CollectionVideos, "delete from", true))

	err := writeError(invalid, content.CollectionVideos, "insert into", false)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.NotErrorIs(t, err, ErrNotFound)

	other := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	err = writeError(other, content.CollectionVideos, "insert into", false)
	assert.NotErrorIs(t, err, ErrInvalidValue)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
}
