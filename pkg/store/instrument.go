package store

import (
	"context"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/metrics"
)

// Instrumented records prometheus metrics for every operation of the wrapped store
type Instrumented struct {
	backend string
	store   Store
}

// Instrument wraps s, labelling its metrics with backend
func Instrument(backend string, s Store) *Instrumented {
	return &Instrumented{backend: backend, store: s}
}

func (i *Instrumented) Select(ctx context.Context, collection content.Collection, q *Query) (rows []content.Row, err error) {
	defer i.observe("select", time.Now(), &err)
	return i.store.Select(ctx, collection, q)
}

func (i *Instrumented) Insert(ctx context.Context, collection content.Collection, row content.Row) (_ content.Row, err error) {
	defer i.observe("insert", time.Now(), &err)
	return i.store.Insert(ctx, collection, row)
}

func (i *Instrumented) Update(ctx context.Context, collection content.Collection, id string, patch content.Row) (_ content.Row, err error) {
	defer i.observe("update", time.Now(), &err)
	return i.store.Update(ctx, collection, id, patch)
}

func (i *Instrumented) Delete(ctx context.Context, collection content.Collection, id string) (err error) {
	defer i.observe("delete", time.Now(), &err)
	return i.store.Delete(ctx, collection, id)
}

func (i *Instrumented) Ping(ctx context.Context) (err error) {
	defer i.observe("ping", time.Now(), &err)
	return i.store.Ping(ctx)
}

func (i *Instrumented) Close() error {
	return i.store.Close()
}

func (i *Instrumented) observe(operation string, start time.Time, err *error) {
	status := "success"
	if *err != nil {
		status = "error"
	}
	metrics.StoreOperationCounter.WithLabelValues(i.backend, operation, status).Inc()
	metrics.StoreOperationDuration.WithLabelValues(i.backend, operation, status).Observe(time.Since(start).Seconds())
}
