// Copyright (c) 2026, The tap-channeldock Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package channeldock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/tap-channeldock/tap-channeldock/pkg/defaults"
	cerrors "github.com/tap-channeldock/tap-channeldock/pkg/errors"
	"github.com/tap-channeldock/tap-channeldock/pkg/serializer"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "tap-channeldock"

// Option configures a Client.
type Option func(*Client)

// Client talks to the Channeldock API. It is safe for concurrent use; all
// callers share one request pacer.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	userAgent string

	httpClient      *http.Client
	requestInterval time.Duration
	retryMax        int
	schedule        []time.Duration
	lowPause        time.Duration
	criticalPause   time.Duration
	defaultWait     time.Duration
	maxWait         time.Duration
	now             func() time.Time

	retry *retryablehttp.Client
}

// WithBaseURL overrides the API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its transport is
// wrapped with the request pacer.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestInterval sets the minimum spacing between requests.
// Zero disables pacing.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) {
		c.requestInterval = d
	}
}

// WithRetryMax sets the number of retries after the first attempt.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retryMax = n
		}
	}
}

// WithRetrySchedule sets the waits between retries of failed requests.
func WithRetrySchedule(schedule ...time.Duration) Option {
	return func(c *Client) {
		if len(schedule) > 0 {
			c.schedule = schedule
		}
	}
}

// WithRateLimitPauses sets the pauses applied when X-RateLimit-Remaining is
// low and critical.
func WithRateLimitPauses(low, critical time.Duration) Option {
	return func(c *Client) {
		c.lowPause = low
		c.criticalPause = critical
	}
}

// WithRateLimitWaits sets the wait after a 429 without a reset header and the
// cap for waits derived from the header.
func WithRateLimitWaits(defaultWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.defaultWait = defaultWait
		c.maxWait = maxWait
	}
}

// WithClock replaces the time source used to interpret X-RateLimit-Reset.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Client for the given credentials.
func New(apiKey, apiSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:         defaults.BaseURL,
		apiKey:          apiKey,
		apiSecret:       apiSecret,
		userAgent:       DefaultUserAgent,
		requestInterval: defaults.RequestInterval,
		retryMax:        defaults.RetryMax,
		schedule:        defaults.RetrySchedule(),
		lowPause:        defaults.RateLimitLowPause,
		criticalPause:   defaults.RateLimitCriticalPause,
		defaultWait:     defaults.RateLimitDefaultWait,
		maxWait:         defaults.RateLimitMaxWait,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: serializer.NewTransport(),
		}
	}

	limit := rate.Inf
	if c.requestInterval > 0 {
		limit = rate.Every(c.requestInterval)
	}
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	paced := *c.httpClient
	paced.Transport = &pacedTransport{
		base:          base,
		limiter:       rate.NewLimiter(limit, 1),
		lowPause:      c.lowPause,
		criticalPause: c.criticalPause,
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &paced
	rc.Logger = slog.Default()
	rc.RetryMax = c.retryMax
	rc.CheckRetry = c.checkRetry
	rc.Backoff = c.backoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			retriesTotal.WithLabelValues(req.URL.Path).Inc()
		}
	}
	c.retry = rc

	return c
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetPage fetches one page of a list endpoint and extracts the records held
// under recordsKey.
func (c *Client) GetPage(ctx context.Context, path string, params url.Values, recordsKey string) (*Page, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to build request", err)
	}
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("api_secret", c.apiSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.retry.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, transportError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeUnavailable,
			"failed to read response body", err, map[string]any{"path": path})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(path, resp, body)
	}

	page, err := parsePage(body, recordsKey)
	if err != nil {
		return nil, withPath(err, path)
	}
	return page, nil
}

func transportError(path string, err error) error {
	ctx := map[string]any{"path": path}
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return cerrors.WrapWithContext(cerrors.ErrCodeTimeout, "channeldock request timed out", err, ctx)
	default:
		return cerrors.WrapWithContext(cerrors.ErrCodeUnavailable, "channeldock request failed", err, ctx)
	}
}

func statusError(path string, resp *http.Response, body []byte) error {
	code := cerrors.ErrCodeInvalidRequest
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		code = cerrors.ErrCodeUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		code = cerrors.ErrCodeNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		code = cerrors.ErrCodeRateLimitExceeded
	case resp.StatusCode >= 500:
		code = cerrors.ErrCodeUnavailable
	}

	return cerrors.NewWithContext(code,
		fmt.Sprintf("%s for path: %s", resp.Status, path),
		map[string]any{
			"path":   path,
			"status": resp.StatusCode,
			"body":   excerpt(body),
		})
}

func withPath(err error, path string) error {
	var se *cerrors.StructuredError
	if errors.As(err, &se) {
		if se.Context == nil {
			se.Context = map[string]any{}
		}
		se.Context["path"] = path
	}
	return err
}
