package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/store"
	"github.com/foomo/showcase/responses"
	"go.uber.org/zap"
)

type (
	// Admin serves CRUD management of all collections behind a bearer token
	Admin struct {
		l     *zap.Logger
		path  string
		token string
		store store.Store
		mux   *http.ServeMux
		now   func() time.Time
	}
	AdminOption func(*Admin)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewAdmin returns the admin handler. Every request is rejected while token is empty.
func NewAdmin(l *zap.Logger, s store.Store, token string, opts ...AdminOption) http.Handler {
	inst := &Admin{
		l:     l.Named("admin"),
		path:  "/admin",
		token: token,
		store: s,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(inst)
	}

	inst.mux = http.NewServeMux()
	inst.routes()

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func AdminWithPath(v string) AdminOption {
	return func(o *Admin) {
		o.path = v
	}
}

func adminWithClock(fn func() time.Time) AdminOption {
	return func(o *Admin) {
		o.now = fn
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (a *Admin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (a *Admin) routes() {
	a.handle("GET /{collection}", RouteAdminList, a.list)
	a.handle("POST /{collection}", RouteAdminCreate, a.create)
	a.handle("PUT /{collection}/{id}", RouteAdminUpdate, a.update)
	a.handle("DELETE /{collection}/{id}", RouteAdminDelete, a.delete)
	a.handle("POST /{collection}/{id}/publish", RouteAdminPublish, a.togglePublished)
	a.handle("POST /"+string(content.CollectionContactSubmissions)+"/{id}/read", RouteAdminRead, a.markRead)
}

func (a *Admin) handle(pattern string, route Route, fn handlerFunc) {
	method, path, _ := strings.Cut(pattern, " ")
	a.mux.Handle(method+" "+a.path+path, serve(a.l, route, a.authorized(fn)))
}

func (a *Admin) authorized(fn handlerFunc) handlerFunc {
	return func(r *http.Request) (interface{}, *responses.Error) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if a.token == "" || !ok || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			return nil, responses.NewErrorf(http.StatusUnauthorized, responses.ErrorCodeUnauthorized, "missing or invalid admin token")
		}
		return fn(r)
	}
}

func (a *Admin) list(r *http.Request) (interface{}, *responses.Error) {
	collection, errReply := collectionValue(r)
	if errReply != nil {
		return nil, errReply
	}
	field, descending := collection.DefaultOrder()
	rows, err := a.store.Select(r.Context(), collection, store.NewQuery().OrderBy(field, descending))
	if err != nil {
		return nil, storeError(err)
	}
	if rows == nil {
		rows = []content.Row{}
	}
	return rows, nil
}

func (a *Admin) create(r *http.Request) (interface{}, *responses.Error) {
	collection, errReply := collectionValue(r)
	if errReply != nil {
		return nil, errReply
	}
	var row content.Row
	if errReply := decodeBody(r, &row); errReply != nil {
		return nil, errReply
	}
	if row == nil {
		row = content.Row{}
	}
	if _, ok := row[content.FieldCreatedAt]; !ok {
		row[content.FieldCreatedAt] = a.now().UTC().Format(time.RFC3339Nano)
	}
	if collection == content.CollectionContactSubmissions {
		if _, ok := row[content.FieldIsRead]; !ok {
			row[content.FieldIsRead] = false
		}
	}
	if err := content.Validate(collection, row); err != nil {
		return nil, responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput, "%s", err)
	}

	created, err := a.store.Insert(r.Context(), collection, row)
	if err != nil {
		return nil, storeError(err)
	}
	a.l.Info("created row", zap.String("collection", string(collection)), zap.String("id", created.ID()))
	return created, nil
}

func (a *Admin) update(r *http.Request) (interface{}, *responses.Error) {
	collection, errReply := collectionValue(r)
	if errReply != nil {
		return nil, errReply
	}
	patch := content.Row{}
	if errReply := decodeBody(r, &patch); errReply != nil {
		return nil, errReply
	}
	delete(patch, content.FieldID)
	if err := content.Validate(collection, patch); err != nil {
		return nil, responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput, "%s", err)
	}

	updated, err := a.store.Update(r.Context(), collection, r.PathValue("id"), patch)
	if err != nil {
		return nil, storeError(err)
	}
	return updated, nil
}

func (a *Admin) delete(r *http.Request) (interface{}, *responses.Error) {
	collection, errReply := collectionValue(r)
	if errReply != nil {
		return nil, errReply
	}
	id := r.PathValue("id")
	if err := a.store.Delete(r.Context(), collection, id); err != nil {
		return nil, storeError(err)
	}
	a.l.Info("deleted row", zap.String("collection", string(collection)), zap.String("id", id))
	return responses.Deleted{ID: id}, nil
}

func (a *Admin) togglePublished(r *http.Request) (interface{}, *responses.Error) {
	collection, errReply := collectionValue(r)
	if errReply != nil {
		return nil, errReply
	}
	if !collection.Publishable() {
		return nil, responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput,
			"collection %q can not be published", collection)
	}
	id := r.PathValue("id")
	row, err := store.Get(r.Context(), a.store, collection, id)
	if err != nil {
		return nil, storeError(err)
	}
	updated, err := a.store.Update(r.Context(), collection, id, content.Row{
		content.FieldIsPublished: !row.Bool(content.FieldIsPublished),
	})
	if err != nil {
		return nil, storeError(err)
	}
	return updated, nil
}

func (a *Admin) markRead(r *http.Request) (interface{}, *responses.Error) {
	updated, err := a.store.Update(r.Context(), content.CollectionContactSubmissions, r.PathValue("id"), content.Row{
		content.FieldIsRead: true,
	})
	if err != nil {
		return nil, storeError(err)
	}
	return updated, nil
}

func collectionValue(r *http.Request) (content.Collection, *responses.Error) {
	collection := content.Collection(r.PathValue("collection"))
	if !collection.Valid() {
		return "", responses.NewErrorf(http.StatusNotFound, responses.ErrorCodeUnknownCollection,
			"unknown collection %q", collection)
	}
	return collection, nil
}
