package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/fetcher"
	"github.com/foomo/showcase/pkg/metrics"
	"github.com/foomo/showcase/pkg/store"
	"github.com/foomo/showcase/requests"
	"github.com/foomo/showcase/responses"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxFeaturedLimit = 50

type (
	// HTTP serves the public pages' data
	HTTP struct {
		l             *zap.Logger
		path          string
		fetcher       *fetcher.Fetcher
		store         store.Store
		mux           *http.ServeMux
		featuredLimit int
		now           func() time.Time
	}
	HTTPOption func(*HTTP)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewHTTP returns a shiny new web server
func NewHTTP(l *zap.Logger, s store.Store, opts ...HTTPOption) http.Handler {
	inst := &HTTP{
		l:             l.Named("http"),
		path:          "/api",
		store:         s,
		featuredLimit: 6,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(inst)
	}

	inst.fetcher = fetcher.New(inst.l, s)
	inst.mux = http.NewServeMux()
	inst.routes()

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithPath(v string) HTTPOption {
	return func(o *HTTP) {
		o.path = v
	}
}

// WithFeaturedLimit sets the number of featured items served when the request names none
func WithFeaturedLimit(v int) HTTPOption {
	return func(o *HTTP) {
		o.featuredLimit = v
	}
}

func withClock(fn func() time.Time) HTTPOption {
	return func(o *HTTP) {
		o.now = fn
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) routes() {
	h.mux.Handle("GET "+h.path+"/portfolio", serve(h.l, RoutePortfolio, h.portfolio))
	h.mux.Handle("GET "+h.path+"/portfolio/featured", serve(h.l, RouteFeaturedWork, h.featuredWork))
	h.mux.Handle("GET "+h.path+"/videos", serve(h.l, RouteVideos, h.videos))
	h.mux.Handle("GET "+h.path+"/collaborations", serve(h.l, RouteCollaborations, h.collaborations))
	h.mux.Handle("GET "+h.path+"/home", serve(h.l, RouteHome, h.home))
	h.mux.Handle("GET "+h.path+"/categories/{collection}", serve(h.l, RouteCategories, h.categories))
	h.mux.Handle("GET "+h.path+"/navigation", serve(h.l, RouteNavigation, h.navigation))
	h.mux.Handle("POST "+h.path+"/contact", serve(h.l, RouteContact, h.contact))
}

func (h *HTTP) portfolio(r *http.Request) (interface{}, *responses.Error) {
	res := h.fetchPortfolio(r.Context(), false, 0)
	return responses.List[content.PortfolioItem]{
		Items: content.FilterByCategory(res.Items, r.URL.Query().Get("category")),
	}, nil
}

func (h *HTTP) featuredWork(r *http.Request) (interface{}, *responses.Error) {
	limit := h.featuredLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxFeaturedLimit {
			return nil, responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput,
				"limit must be a number between 1 and %d", maxFeaturedLimit)
		}
		limit = n
	}
	return responses.List[content.PortfolioItem]{
		Items: h.fetchPortfolio(r.Context(), true, limit).Items,
	}, nil
}

func (h *HTTP) videos(r *http.Request) (interface{}, *responses.Error) {
	res := fetcher.Fetch(r.Context(), h.fetcher, fetcher.Request[content.Video]{
		Collection: content.CollectionVideos,
		Fallback:   content.FallbackVideos,
	})
	return responses.List[content.Video]{
		Items: content.FilterByCategory(res.Items, r.URL.Query().Get("category")),
	}, nil
}

func (h *HTTP) collaborations(r *http.Request) (interface{}, *responses.Error) {
	return responses.Collaborations{
		Items:      content.FilterByCategory(h.fetchCollaborations(r.Context()).Items, r.URL.Query().Get("category")),
		BrandLogos: content.BrandLogos(),
	}, nil
}

func (h *HTTP) home(r *http.Request) (interface{}, *responses.Error) {
	var (
		reply responses.Home
		g, ctx = errgroup.WithContext(r.Context())
	)
	g.Go(func() error {
		reply.FeaturedWork = h.fetchPortfolio(ctx, true, h.featuredLimit).Items
		return nil
	})
	g.Go(func() error {
		reply.Collaborations = h.fetchCollaborations(ctx).Items
		return nil
	})
	// fetches never fail, they fall back
	_ = g.Wait()
	return reply, nil
}

func (h *HTTP) categories(r *http.Request) (interface{}, *responses.Error) {
	collection := content.Collection(r.PathValue("collection"))
	categories := content.Categories(collection)
	if categories == nil {
		return nil, responses.NewErrorf(http.StatusNotFound, responses.ErrorCodeUnknownCollection,
			"no categories for collection %q", collection)
	}
	return responses.Categories{
		Collection: collection,
		Categories: categories,
	}, nil
}

func (h *HTTP) navigation(r *http.Request) (interface{}, *responses.Error) {
	return content.Navigation(), nil
}

func (h *HTTP) contact(r *http.Request) (interface{}, *responses.Error) {
	req := &requests.Contact{}
	if errReply := decodeBody(r, req); errReply != nil {
		metrics.ContactSubmissionCounter.WithLabelValues("invalid").Inc()
		return nil, errReply
	}
	if err := req.Validate(); err != nil {
		metrics.ContactSubmissionCounter.WithLabelValues("invalid").Inc()
		errReply := responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput, "%s", err)
		h.l.Debug("invalid contact form", zap.Int("problems", len(multierr.Errors(err))))
		return nil, errReply
	}

	row, err := h.store.Insert(r.Context(), content.CollectionContactSubmissions, req.Submission(h.now()))
	if err != nil {
		metrics.ContactSubmissionCounter.WithLabelValues("error").Inc()
		return nil, storeError(err)
	}
	metrics.ContactSubmissionCounter.WithLabelValues("success").Inc()
	h.l.Info("received contact form submission", zap.String("id", row.ID()))
	return responses.Contact{
		Success: true,
		ID:      row.ID(),
	}, nil
}

func (h *HTTP) fetchPortfolio(ctx context.Context, featured bool, limit int) fetcher.Result[content.PortfolioItem] {
	fallback := content.FallbackPortfolio
	if featured {
		fallback = content.FallbackFeaturedWork
	}
	return fetcher.Fetch(ctx, h.fetcher, fetcher.Request[content.PortfolioItem]{
		Collection: content.CollectionPortfolio,
		Featured:   featured,
		Limit:      limit,
		Fallback:   fallback,
	})
}

func (h *HTTP) fetchCollaborations(ctx context.Context) fetcher.Result[content.Collaboration] {
	return fetcher.Fetch(ctx, h.fetcher, fetcher.Request[content.Collaboration]{
		Collection: content.CollectionCollaborations,
		Fallback:   content.FallbackCollaborations,
	})
}
