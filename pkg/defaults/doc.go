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

// Package defaults provides centralized configuration constants for the tap.
//
// This package defines timeout values, retry parameters, and Channeldock API
// limits used across the codebase.
//
// # Categories
//
//   - Server timeouts: for the optional metrics server
//   - HTTP client timeouts: for outbound Channeldock requests
//   - Channeldock limits: page size, pacing and rate-limit thresholds
//   - Retry schedule: waits between retried requests
//
// # Usage
//
//	import "github.com/tap-channeldock/tap-channeldock/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ServerShutdownTimeout)
//	defer cancel()
package defaults
