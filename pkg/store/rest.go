package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RESTPath is the path below which the hosted store exposes its tables
const RESTPath = "/rest/v1"

type (
	// REST talks to a PostgREST compatible hosted data store
	REST struct {
		l          *zap.Logger
		endpoint   string
		apiKey     string
		httpClient *http.Client
	}
	RESTOption func(*REST)
	// RESTError is the error body returned by the hosted store
	RESTError struct {
		Status  int    `json:"-"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
		Hint    string `json:"hint"`
	}
)

func (e *RESTError) Error() string {
	return fmt.Sprintf("status:%d, code:%q, message:%q", e.Status, e.Code, e.Message)
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewREST returns a client for the store at baseURL, e.g. https://<project>.supabase.co
func NewREST(l *zap.Logger, baseURL, apiKey string, opts ...RESTOption) (*REST, error) {
	if !utils.IsValidURL(baseURL) {
		return nil, errors.Errorf("invalid store url %q", baseURL)
	}
	inst := &REST{
		l:          l.Named("rest"),
		endpoint:   utils.JoinPath(baseURL, RESTPath),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func RESTWithHTTPClient(v *http.Client) RESTOption {
	return func(o *REST) {
		o.httpClient = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (r *REST) Select(ctx context.Context, collection content.Collection, q *Query) ([]content.Row, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	var rows []content.Row
	err := r.do(ctx, http.MethodGet, collection, selectParams(q), nil, &rows)
	if isInvalidText(err) {
		// a malformed id filter cannot match anything
		return []content.Row{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to select from %s", collection)
	}
	return rows, nil
}

func (r *REST) Insert(ctx context.Context, collection content.Collection, row content.Row) (content.Row, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	var rows []content.Row
	if err := r.do(ctx, http.MethodPost, collection, nil, []content.Row{row}, &rows); err != nil {
		return nil, writeError(err, collection, "insert into", false)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("insert into %s returned no row", collection)
	}
	return rows[0], nil
}

func (r *REST) Update(ctx context.Context, collection content.Collection, id string, patch content.Row) (content.Row, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	var rows []content.Row
	if err := r.do(ctx, http.MethodPatch, collection, idParams(id), patch, &rows); err != nil {
		return nil, writeError(err, collection, "update", true)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func (r *REST) Delete(ctx context.Context, collection content.Collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	var rows []content.Row
	if err := r.do(ctx, http.MethodDelete, collection, idParams(id), nil, &rows); err != nil {
		return writeError(err, collection, "delete from", true)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping requests the schema root of the store
func (r *REST) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"/", nil)
	if err != nil {
		return err
	}
	r.authorize(req)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach store")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("bad response code from store %q", resp.Status)
	}
	return nil
}

func (r *REST) Close() error {
	r.httpClient.CloseIdleConnections()
	return nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (r *REST) authorize(req *http.Request) {
	if r.apiKey != "" {
		req.Header.Set("apikey", r.apiKey)
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}
}

func (r *REST) do(ctx context.Context, method string, collection content.Collection, params url.Values, body, v interface{}) error {
	u := utils.JoinPath(r.endpoint, string(collection))
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	r.authorize(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	r.l.Debug("store request", zap.String("method", method), zap.String("url", u))
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		restErr := &RESTError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(data, restErr); jsonErr != nil || restErr.Message == "" {
			restErr.Message = http.StatusText(resp.StatusCode)
		}
		return restErr
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func selectParams(q *Query) url.Values {
	params := url.Values{}
	params.Set("select", "*")
	if q == nil {
		return params
	}
	for _, f := range q.Filters {
		if f.Value == nil {
			params.Add(f.Field, "is.null")
			continue
		}
		params.Add(f.Field, "eq."+formatValue(f.Value))
	}
	if q.Order != nil {
		dir := "asc"
		if q.Order.Descending {
			dir = "desc"
		}
		params.Set("order", q.Order.Field+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

func idParams(id string) url.Values {
	return url.Values{content.FieldID: []string{"eq." + id}}
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
