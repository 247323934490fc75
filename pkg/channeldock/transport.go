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

	"golang.org/x/time/rate"

	"github.com/tap-channeldock/tap-channeldock/pkg/defaults"
)

const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// pacedTransport spaces every attempt, including retries, through a shared
// limiter and pauses when the API reports few remaining requests.
type pacedTransport struct {
	base          http.RoundTripper
	limiter       *rate.Limiter
	lowPause      time.Duration
	criticalPause time.Duration
}

func (t *pacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	requestDuration.WithLabelValues(req.URL.Path).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(req.URL.Path, "error").Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(req.URL.Path, strconv.Itoa(resp.StatusCode)).Inc()

	if pause := t.pauseFor(resp.Header); pause > 0 {
		if err := sleep(ctx, pause); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}

func (t *pacedTransport) pauseFor(h http.Header) time.Duration {
	raw := h.Get(headerRateLimitRemaining)
	if raw == "" {
		return 0
	}
	remaining, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	slog.Debug("rate limit status",
		"remaining", remaining,
		"reset", h.Get(headerRateLimitReset))

	switch {
	case remaining < defaults.RateLimitCriticalRemaining:
		slog.Warn("rate limit critical, waiting longer", "remaining", remaining, "pause", t.criticalPause.String())
		rateLimitPauses.WithLabelValues("critical").Inc()
		return t.criticalPause
	case remaining < defaults.RateLimitLowRemaining:
		slog.Warn("rate limit low, slowing down", "remaining", remaining, "pause", t.lowPause.String())
		rateLimitPauses.WithLabelValues("low").Inc()
		return t.lowPause
	default:
		return 0
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
