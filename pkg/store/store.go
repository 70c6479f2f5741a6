package store

import (
	"context"

	"github.com/foomo/showcase/content"
	"github.com/jackc/pgx/v5/pgconn"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNotFound is returned when a row addressed by id does not exist
	ErrNotFound = errors.New("row not found")
	// ErrUnknownCollection is returned for collections the store does not manage
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrInvalidValue is returned when the store rejects a value of a new row
	ErrInvalidValue = errors.New("invalid value")
)

// pgInvalidTextRepresentation is raised for malformed uuids
const pgInvalidTextRepresentation = "22P02"

// Store is the data store behind the site. Implementations must be safe
// for concurrent use.
type Store interface {
	// Select returns the rows of a collection matching q, in q's order.
	Select(ctx context.Context, collection content.Collection, q *Query) ([]content.Row, error)
	// Insert adds a row and returns it as stored.
	Insert(ctx context.Context, collection content.Collection, row content.Row) (content.Row, error)
	// Update applies patch to the row with the given id and returns the result.
	// Returns ErrNotFound if there is no such row.
	Update(ctx context.Context, collection content.Collection, id string, patch content.Row) (content.Row, error)
	// Delete removes the row with the given id.
	// Returns ErrNotFound if there is no such row.
	Delete(ctx context.Context, collection content.Collection, id string) error
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the store.
	Close() error
}

// Get returns a single row by id
func Get(ctx context.Context, s Store, collection content.Collection, id string) (content.Row, error) {
	rows, err := s.Select(ctx, collection, NewQuery().Eq(content.FieldID, id).WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func validateCollection(collection content.Collection) error {
	if !collection.Valid() {
		return errors.Wrap(ErrUnknownCollection, string(collection))
	}
	return nil
}

// writeError maps a failed write. A malformed id can not address a row, so
// byID writes answer ErrNotFound while inserts answer ErrInvalidValue.
func writeError(err error, collection content.Collection, op string, byID bool) error {
	switch {
	case isInvalidText(err) && byID:
		return ErrNotFound
	case isInvalidText(err):
		return errors.Wrapf(ErrInvalidValue, "failed to %s %s: %s", op, collection, err)
	}
	return errors.Wrapf(err, "failed to %s %s", op, collection)
}

func isInvalidText(err error) bool {
	var (
		pgErr   *pgconn.PgError
		restErr *RESTError
	)
	switch {
	case errors.As(err, &pgErr):
		return pgErr.Code == pgInvalidTextRepresentation
	case errors.As(err, &restErr):
		return restErr.Code == pgInvalidTextRepresentation
	}
	return false
}
