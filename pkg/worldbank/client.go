package worldbank

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/httpclient"
	"github.com/databoard/databoard/pkg/ratelimit"
)

// Client fetches indicator data from the World Bank v2 API.
// Every call re-fetches; there is no caching and no retrying.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests to point at a stub.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit sets the outbound requests-per-second budget.
func WithRateLimit(rps int) Option {
	return func(c *Client) { c.limiter = ratelimit.NewPerSecond(rps) }
}

// NewClient creates a Client with pooled transport and default pacing.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaults.WorldBankBaseURL,
		httpClient: httpclient.Default(),
		limiter:    ratelimit.NewPerSecond(defaults.OutboundRPS),
		userAgent:  defaults.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EndpointURL builds the request URL for q. Country and indicator codes are
// percent-encoded into the path; the date range travels as "start:end".
func (c *Client) EndpointURL(q Query) string {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("date", fmt.Sprintf("%d:%d", q.StartYear, q.EndYear))
	params.Set("per_page", strconv.Itoa(ClampLimit(q.Limit)))

	return fmt.Sprintf("%s/country/%s/indicator/%s?%s",
		c.baseURL,
		url.PathEscape(q.Country),
		url.PathEscape(q.Indicator),
		params.Encode(),
	)
}

// Fetch performs the single outbound GET for q and returns the raw response
// body plus the endpoint URL that was called. A non-2xx status is returned
// as a *StatusError; transport failures (including the request timeout) come
// back wrapped.
func (c *Client) Fetch(ctx context.Context, q Query) ([]byte, string, error) {
	endpoint := c.EndpointURL(q)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, endpoint, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, endpoint, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", defaults.ContentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, endpoint, fmt.Errorf("fetching %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, endpoint, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, endpoint, fmt.Errorf("reading response body: %w", err)
	}
	return body, endpoint, nil
}
