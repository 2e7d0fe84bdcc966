// Package gapi is the shared HTTP layer under every generated Google
// API client in this module. It owns the resty client, credential
// injection, path-template expansion and error decoding; the per-API
// packages only describe endpoints and payload shapes.
package gapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const defaultUserAgent = "apiary-go/googleapis v0.1"

// Client wraps a resty client pointed at one API's endpoint. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	http   *resty.Client
	tokens oauth2.TokenSource
	apiKey string
}

type Option func(*Client)

// NewClient creates the underlying HTTP client for a service. baseURL
// is the API's root endpoint (rootUrl + servicePath in Discovery
// terms).
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent).
		SetTimeout(30 * time.Second)

	c := &Client{http: rc}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// WithRestyClient swaps the entire underlying resty client. The base
// URL is preserved from the constructor argument only if the caller
// sets it again.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.http = rc
		}
	}
}

// WithHTTPClient installs a custom *http.Client as the transport, e.g.
// one produced by oauth2.NewClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = resty.NewWithClient(hc).
				SetBaseURL(c.http.BaseURL).
				SetHeader("Accept", "application/json").
				SetHeader("User-Agent", defaultUserAgent)
		}
	}
}

// WithTokenSource attaches OAuth2 credentials. A fresh token is
// requested from the source before each call and sent as a bearer
// token.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithAPIKey authenticates calls with an API key instead of OAuth; the
// key travels as the `key` query parameter.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithEndpoint overrides the service's default base URL, mainly for
// tests and private/regional endpoints.
func WithEndpoint(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" {
			c.http.SetHeader(key, value)
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.http.SetHeader("User-Agent", ua)
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// Endpoint reports the base URL calls are issued against.
func (c *Client) Endpoint() string {
	return c.http.BaseURL
}

// Call describes one request/response round trip. Path is a Discovery
// path template relative to the base URL; `{name}` segments are
// escaped, `{+name}` segments may span multiple path segments.
type Call struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      url.Values
	Body       any
	Result     any
}

// CallOption adds an optional query parameter to a call. Generated
// methods accept these after the required positional parameters.
type CallOption func(url.Values)

// Query returns a CallOption setting one query parameter.
func Query(key, value string) CallOption {
	return func(v url.Values) {
		v.Set(key, value)
	}
}

// Do dispatches the call and decodes the response body into
// call.Result when it is non-nil. Non-2xx responses are returned as
// *APIError.
func (c *Client) Do(ctx context.Context, call *Call, opts ...CallOption) error {
	path, err := expandPath(call.Path, call.PathParams)
	if err != nil {
		return err
	}

	query := url.Values{}
	for k, vs := range call.Query {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(query)
		}
	}
	if query.Get("alt") == "" {
		query.Set("alt", "json")
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	apiErr := new(errorReply)
	req := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetError(apiErr)
	if call.Body != nil {
		req.SetBody(call.Body)
	}
	if call.Result != nil {
		req.SetResult(call.Result)
	}
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return errors.Wrap(err, "fetch access token")
		}
		req.SetAuthToken(tok.AccessToken)
	}

	resp, err := req.Execute(call.Method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return newAPIError(resp.StatusCode(), apiErr, resp.Body())
	}
	return nil
}

// expandPath substitutes `{name}` and `{+name}` template segments with
// values from params. Plain variables are escaped per RFC 6570 simple
// expansion; `+` (reserved) variables keep their slashes so full
// resource paths like `accounts/123/containers/456` pass through.
func expandPath(tmpl string, params map[string]string) (string, error) {
	if !strings.Contains(tmpl, "{") {
		return tmpl, nil
	}
	var b strings.Builder
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", errors.Errorf("unterminated variable in path template %q", tmpl)
		}
		b.WriteString(rest[:open])
		name := rest[open+1 : open+end]
		rest = rest[open+end+1:]

		reserved := strings.HasPrefix(name, "+")
		name = strings.TrimPrefix(name, "+")
		value, ok := params[name]
		if !ok {
			return "", errors.Errorf("missing value for path parameter %q in template %q", name, tmpl)
		}
		if value == "" {
			return "", errors.Errorf("empty value for path parameter %q in template %q", name, tmpl)
		}
		if reserved {
			segs := strings.Split(value, "/")
			for i, s := range segs {
				segs[i] = url.PathEscape(s)
			}
			b.WriteString(strings.Join(segs, "/"))
		} else {
			b.WriteString(url.PathEscape(value))
		}
	}
}
