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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tap_channeldock_http_requests_total",
			Help: "Total number of Channeldock API request attempts",
		},
		[]string{"path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tap_channeldock_http_request_duration_seconds",
			Help:    "Channeldock API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tap_channeldock_http_retries_total",
			Help: "Total number of retried Channeldock API requests",
		},
		[]string{"path"},
	)

	rateLimitPauses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tap_channeldock_rate_limit_pauses_total",
			Help: "Total number of pauses taken because few API requests remained",
		},
		[]string{"severity"},
	)
)
