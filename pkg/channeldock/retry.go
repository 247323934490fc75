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
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// checkRetry retries 429 and 5xx responses and recoverable transport errors.
// Context cancellation is never retried.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		slog.Warn("rate limit exceeded",
			"path", resp.Request.URL.Path,
			"reset", resp.Header.Get(headerRateLimitReset))
		return true, nil
	case resp.StatusCode >= 500:
		slog.Warn("server error, will retry",
			"path", resp.Request.URL.Path,
			"status", resp.StatusCode)
		return true, nil
	default:
		return false, nil
	}
}

// backoff returns the wait before retry number attempt (0-based).
func (c *Client) backoff(_, _ time.Duration, attempt int, resp *http.Response) time.Duration {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		if wait, ok := c.rateLimitWait(resp.Header.Get(headerRateLimitReset)); ok {
			slog.Warn("waiting for rate limit reset",
				"minutes", int(wait/time.Minute),
				"wait", wait.String())
			return wait
		}
	}
	return c.scheduled(attempt)
}

// rateLimitWait derives the wait from an X-RateLimit-Reset unix timestamp.
// A missing or unparsable header yields the default wait; a reset time in
// the past yields ok=false so the regular schedule applies.
func (c *Client) rateLimitWait(reset string) (time.Duration, bool) {
	if reset == "" {
		return c.defaultWait, true
	}
	ts, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return c.defaultWait, true
	}
	wait := time.Unix(ts, 0).Sub(c.now())
	if wait <= 0 {
		return 0, false
	}
	if c.maxWait > 0 && wait > c.maxWait {
		wait = c.maxWait
	}
	return wait, true
}

func (c *Client) scheduled(attempt int) time.Duration {
	if len(c.schedule) == 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= len(c.schedule) {
		return c.schedule[len(c.schedule)-1]
	}
	return c.schedule[attempt]
}
