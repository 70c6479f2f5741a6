package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/requests"
	"github.com/foomo/showcase/responses"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	// Client a showcase api client
	Client struct {
		t Transport
	}
	reply struct {
		Reply interface{} `json:"reply"`
	}
)

func New(t Transport) *Client {
	return &Client{
		t: t,
	}
}

// NewHTTPClient returns a client for the api at endpoint
func NewHTTPClient(endpoint string, opts ...HTTPTransportOption) (*Client, error) {
	t, err := NewHTTPTransport(endpoint, opts...)
	if err != nil {
		return nil, err
	}
	return New(t), nil
}

// Portfolio returns the published portfolio, filtered by category unless it is empty or "All"
func (c *Client) Portfolio(ctx context.Context, category string) ([]content.PortfolioItem, error) {
	var list responses.List[content.PortfolioItem]
	err := c.t.Call(ctx, http.MethodGet, "portfolio", categoryQuery(category), nil, &list)
	return list.Items, err
}

// FeaturedWork returns up to limit featured items, zero uses the server default
func (c *Client) FeaturedWork(ctx context.Context, limit int) ([]content.PortfolioItem, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	var list responses.List[content.PortfolioItem]
	err := c.t.Call(ctx, http.MethodGet, "portfolio/featured", query, nil, &list)
	return list.Items, err
}

func (c *Client) Videos(ctx context.Context, category string) ([]content.Video, error) {
	var list responses.List[content.Video]
	err := c.t.Call(ctx, http.MethodGet, "videos", categoryQuery(category), nil, &list)
	return list.Items, err
}

// Collaborations returns the collaborations of the given collaboration type, empty for all
func (c *Client) Collaborations(ctx context.Context, collaborationType string) (*responses.Collaborations, error) {
	response := &responses.Collaborations{}
	if err := c.t.Call(ctx, http.MethodGet, "collaborations", categoryQuery(collaborationType), nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) Home(ctx context.Context) (*responses.Home, error) {
	response := &responses.Home{}
	if err := c.t.Call(ctx, http.MethodGet, "home", nil, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) Categories(ctx context.Context, collection content.Collection) ([]string, error) {
	var response responses.Categories
	err := c.t.Call(ctx, http.MethodGet, "categories/"+string(collection), nil, nil, &response)
	return response.Categories, err
}

func (c *Client) Navigation(ctx context.Context) ([]content.NavigationEntry, error) {
	var response []content.NavigationEntry
	err := c.t.Call(ctx, http.MethodGet, "navigation", nil, nil, &response)
	return response, err
}

// SubmitContact sends the contact form
func (c *Client) SubmitContact(ctx context.Context, request *requests.Contact) (*responses.Contact, error) {
	response := &responses.Contact{}
	if err := c.t.Call(ctx, http.MethodPost, "contact", nil, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Shutdown releases idle connections of the transport
func (c *Client) Shutdown() {
	c.t.Close()
}

func categoryQuery(category string) url.Values {
	if category == "" {
		return nil
	}
	return url.Values{"category": {category}}
}
