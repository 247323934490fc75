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

// Package server exposes the tap's Prometheus metrics and health probes over
// HTTP while a sync runs.
//
// # Usage
//
//	s := server.New(server.WithAddress(":9090"), server.WithVersion(version))
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	go s.Start(ctx)
//
// # Endpoints
//
//	GET /         server name, version and routes
//	GET /metrics  Prometheus metrics in text exposition format
//	GET /healthz  liveness probe, always 200 while the process serves
//	GET /readyz   readiness probe, 503 until the listener is up
//
// Every request passes through request ID, panic recovery, logging and
// metrics middleware. Request IDs are taken from X-Request-Id when it holds
// a valid UUID and generated otherwise.
//
// # Shutdown
//
// Start returns once its context is canceled and the HTTP server has shut
// down, bounded by Config.ShutdownTimeout. SHUTDOWN_TIMEOUT_SECONDS overrides
// the default timeout.
package server
