package client

import (
	"context"
	"net/url"
)

// Transport carries a single call to the showcase api
type Transport interface {
	// Call sends request to path and decodes the reply into response.
	// Error replies are returned as *responses.Error.
	Call(ctx context.Context, method, path string, query url.Values, request, response interface{}) error
	Close()
}
