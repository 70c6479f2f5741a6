package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	keelhttp "github.com/foomo/keel/net/http"
	"github.com/foomo/showcase/pkg/utils"
	"github.com/foomo/showcase/responses"
	"github.com/pkg/errors"
)

type (
	HTTPTransport struct {
		client   *http.Client
		endpoint string
	}
	HTTPTransportOption func(*HTTPTransport)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewHTTPTransport will create a new http transport for the given api endpoint, e.g. http://localhost:8080/api
func NewHTTPTransport(endpoint string, opts ...HTTPTransportOption) (*HTTPTransport, error) {
	if !utils.IsValidURL(endpoint) {
		return nil, errors.Errorf("invalid endpoint %q", endpoint)
	}
	inst := &HTTPTransport{
		endpoint: endpoint,
		client:   keelhttp.NewHTTPClient(),
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func HTTPTransportWithHTTPClient(v *http.Client) HTTPTransportOption {
	return func(o *HTTPTransport) {
		o.client = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (ht *HTTPTransport) Close() {
	ht.client.CloseIdleConnections()
}

func (ht *HTTPTransport) Call(ctx context.Context, method, path string, query url.Values, request, response interface{}) error {
	u := utils.JoinPath(ht.endpoint, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if request != nil {
		requestBytes, err := json.Marshal(request)
		if err != nil {
			return err
		}
		body = bytes.NewReader(requestBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpResponse, err := ht.client.Do(req)
	if err != nil {
		return err
	}
	defer httpResponse.Body.Close()

	responseBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return err
	}

	if httpResponse.StatusCode != http.StatusOK {
		errReply := &responses.Error{}
		if err := json.Unmarshal(responseBytes, &reply{Reply: errReply}); err != nil || errReply.Status == 0 {
			return errors.Errorf("non 200 reply: %s", httpResponse.Status)
		}
		return errReply
	}
	return json.Unmarshal(responseBytes, &reply{Reply: response})
}
