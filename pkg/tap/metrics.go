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

package tap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tap_channeldock_records_total",
			Help: "Total number of RECORD messages emitted",
		},
		[]string{"stream"},
	)

	streamSyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tap_channeldock_stream_sync_duration_seconds",
			Help:    "Time taken to sync one stream",
			Buckets: []float64{1, 5, 10, 30, 60, 300, 900, 3600},
		},
		[]string{"stream"},
	)

	streamSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tap_channeldock_stream_sync_total",
			Help: "Total number of stream syncs",
		},
		[]string{"stream", "status"}, // success or error
	)
)
