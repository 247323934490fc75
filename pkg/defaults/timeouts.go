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

package defaults

import "time"

// Server timeouts for the metrics HTTP server.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for a single HTTP attempt.
	HTTPClientTimeout = 60 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 10 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 30 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// Channeldock API limits.
const (
	// BaseURL is the Channeldock API host.
	BaseURL = "https://channeldock.com"

	// PageSize is the number of records the API returns per full page.
	PageSize = 50

	// RequestInterval spaces consecutive requests. The API allows 1000
	// requests per hour per account.
	RequestInterval = 500 * time.Millisecond

	// RateLimitLowRemaining is the X-RateLimit-Remaining value below which
	// the client pauses for RateLimitLowPause.
	RateLimitLowRemaining = 100
	// RateLimitLowPause is the pause applied when remaining requests are low.
	RateLimitLowPause = 5 * time.Second

	// RateLimitCriticalRemaining is the X-RateLimit-Remaining value below
	// which the client pauses for RateLimitCriticalPause.
	RateLimitCriticalRemaining = 50
	// RateLimitCriticalPause is the pause applied when remaining requests are critical.
	RateLimitCriticalPause = 30 * time.Second

	// RateLimitDefaultWait is the wait after a 429 without a usable reset header.
	RateLimitDefaultWait = 60 * time.Second
	// RateLimitMaxWait caps the wait derived from X-RateLimit-Reset.
	RateLimitMaxWait = time.Hour

	// ErrorBodyExcerpt is the number of response body characters kept in errors.
	ErrorBodyExcerpt = 200
)

// Retry parameters for failed requests.
const (
	// RetryMax is the number of retries after the first attempt.
	RetryMax = 4
)

// RetrySchedule returns the waits between retried requests; the last value
// repeats once the schedule is exhausted.
func RetrySchedule() []time.Duration {
	return []time.Duration{
		30 * time.Second,
		60 * time.Second,
		120 * time.Second,
		240 * time.Second,
	}
}

// Sync parameters.
const (
	// MaxParallelStreams bounds the number of streams synced at once.
	MaxParallelStreams = 2
)
