package store

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/foomo/showcase/content"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// Document keeps each collection as one JSON array in a Storage backend.
	// Rows keep their insertion order, so sorting on a non-unique key is
	// stable with respect to insertion.
	Document struct {
		l       *zap.Logger
		history *History
		newID   func() string
		mu      sync.RWMutex
	}
	DocumentOption func(*Document)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewDocument(l *zap.Logger, history *History, opts ...DocumentOption) *Document {
	inst := &Document{
		l:       l.Named("document"),
		history: history,
		newID: func() string {
			return uuid.New().String()
		},
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// DocumentWithIDGenerator replaces the uuid generator used for inserted rows without an id
func DocumentWithIDGenerator(fn func() string) DocumentOption {
	return func(o *Document) {
		o.newID = fn
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (d *Document) Select(ctx context.Context, collection content.Collection, q *Query) ([]content.Row, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	d.mu.RLock()
	rows, err := d.load(ctx, collection)
	d.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	result := make([]content.Row, 0, len(rows))
	for _, row := range rows {
		if q.Matches(row) {
			result = append(result, row)
		}
	}
	if q != nil && q.Order != nil {
		field, desc := q.Order.Field, q.Order.Descending
		sort.SliceStable(result, func(i, j int) bool {
			c := compareValues(result[i][field], result[j][field])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	if q != nil && q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (d *Document) Insert(ctx context.Context, collection content.Collection, row content.Row) (content.Row, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	rows, err := d.load(ctx, collection)
	if err != nil {
		return nil, err
	}

	row = row.Clone()
	id := row.ID()
	if id == "" {
		id = d.newID()
	}
	row[content.FieldID] = id
	if index(rows, id) >= 0 {
		return nil, errors.Errorf("duplicate id %q in %s", id, collection)
	}

	if err := d.save(ctx, collection, append(rows, row)); err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

func (d *Document) Update(ctx context.Context, collection content.Collection, id string, patch content.Row) (content.Row, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	rows, err := d.load(ctx, collection)
	if err != nil {
		return nil, err
	}
	i := index(rows, id)
	if i < 0 {
		return nil, ErrNotFound
	}

	row := rows[i].Merge(patch)
	row[content.FieldID] = id
	rows[i] = row

	if err := d.save(ctx, collection, rows); err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

func (d *Document) Delete(ctx context.Context, collection content.Collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	rows, err := d.load(ctx, collection)
	if err != nil {
		return err
	}
	i := index(rows, id)
	if i < 0 {
		return ErrNotFound
	}
	return d.save(ctx, collection, append(rows[:i], rows[i+1:]...))
}

func (d *Document) Ping(ctx context.Context) error {
	_, err := d.history.Current(ctx, content.CollectionPortfolio)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (d *Document) Close() error {
	return d.history.Close()
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (d *Document) load(ctx context.Context, collection content.Collection) ([]content.Row, error) {
	data, err := d.history.Current(ctx, collection)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", collection)
	}
	var rows []content.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", collection)
	}
	return rows, nil
}

func (d *Document) save(ctx context.Context, collection content.Collection, rows []content.Row) error {
	if rows == nil {
		rows = []content.Row{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", collection)
	}
	if err := d.history.Add(ctx, collection, data); err != nil {
		return errors.Wrapf(err, "failed to persist %s", collection)
	}
	d.l.Debug("persisted collection", zap.String("collection", string(collection)), zap.Int("rows", len(rows)))
	return nil
}

func index(rows []content.Row, id string) int {
	for i, row := range rows {
		if row.ID() == id {
			return i
		}
	}
	return -1
}
