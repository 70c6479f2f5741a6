package fetcher

import (
	"context"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/metrics"
	"github.com/foomo/showcase/pkg/store"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Source tells where the items of a Result came from
type Source string

const (
	// SourceLive published rows matching the requested filter
	SourceLive Source = "live"
	// SourceLiveUnfeatured published rows from the retry without the featured filter
	SourceLiveUnfeatured Source = "live_unfeatured"
	// SourceFallback the static fallback list
	SourceFallback Source = "fallback"
)

type (
	// Request describes a public list
	Request[T any] struct {
		Collection content.Collection
		// Featured restricts the first attempt to featured rows
		Featured bool
		// Limit caps the number of rows, zero means no limit
		Limit int
		// Fallback builds the list served when the store has nothing to offer
		Fallback func() []T
	}
	// Result is never empty as long as the fallback is not
	Result[T any] struct {
		Items  []T
		Source Source
	}
	// Fetcher reads published lists from a store
	Fetcher struct {
		l     *zap.Logger
		store store.Store
	}
)

var errEmpty = errors.New("no rows")

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, s store.Store) *Fetcher {
	return &Fetcher{
		l:     l.Named("fetcher"),
		store: s,
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Fetch returns the published rows of req.Collection in display order.
// A featured request that yields nothing is retried once without the
// featured filter. Errors and empty results end in the fallback list.
func Fetch[T any](ctx context.Context, f *Fetcher, req Request[T]) (res Result[T]) {
	start := time.Now()
	l := f.l.With(zap.String("collection", string(req.Collection)))
	defer func() {
		metrics.FetchCounter.WithLabelValues(string(req.Collection), string(res.Source)).Inc()
		metrics.FetchDuration.WithLabelValues(string(req.Collection), string(res.Source)).Observe(time.Since(start).Seconds())
	}()

	q := store.Published().WithLimit(req.Limit)
	if req.Featured {
		q.Eq(content.FieldIsFeatured, true)
	}

	items, err := fetch[T](ctx, f.store, req.Collection, q)
	if err == nil {
		return Result[T]{Items: items, Source: SourceLive}
	}
	l.Debug("primary query served nothing", zap.Bool("featured", req.Featured), zap.Error(err))

	if req.Featured {
		items, err = fetch[T](ctx, f.store, req.Collection, q.Without(content.FieldIsFeatured))
		if err == nil {
			return Result[T]{Items: items, Source: SourceLiveUnfeatured}
		}
		l.Debug("unfeatured retry served nothing", zap.Error(err))
	}

	if errors.Is(err, errEmpty) {
		l.Info("serving fallback for empty collection")
	} else {
		l.Warn("serving fallback after failed query", zap.Error(err))
	}

	var fallback []T
	if req.Fallback != nil {
		fallback = req.Fallback()
	}
	return Result[T]{Items: fallback, Source: SourceFallback}
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func fetch[T any](ctx context.Context, s store.Store, collection content.Collection, q *store.Query) ([]T, error) {
	rows, err := s.Select(ctx, collection, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errEmpty
	}
	return content.Decode[T](rows)
}
