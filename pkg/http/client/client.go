package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Interface interface {
	Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	GetFunc    func(ctx context.Context, path string, opts ...RequestOption) (*Response, error)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
}

type request struct {
	query   url.Values
	headers http.Header
}

// RequestOption customizes a single request
type RequestOption func(*request)

// WithQuery sets the query string parameters
func WithQuery(query url.Values) RequestOption {
	return func(r *request) {
		r.query = query
	}
}

// WithHeader adds a request header
func WithHeader(key, value string) RequestOption {
	return func(r *request) {
		r.headers.Add(key, value)
	}
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL: opts.BaseURL,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, path, opts...)
	}

	r := &request{headers: make(http.Header)}
	for _, opt := range opts {
		opt(r)
	}

	var fullURL string
	if c.baseURL == "" {
		fullURL = path // If no base URL, treat path as full URL
	} else {
		fullURL = c.baseURL + path
	}
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header = r.headers
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			return
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
