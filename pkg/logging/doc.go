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

// Package logging provides structured logging utilities for tap-channeldock.
//
// # Overview
//
// This package wraps the standard library slog package with the tap's defaults.
// A Singer tap owns standard output for its messages, so every log line goes to
// stderr as JSON.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("tap-channeldock", version, "info")
//	    slog.Info("sync started", "stream", "products")
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable seeds the level when none is given:
//
//	LOG_LEVEL=debug tap-channeldock --config config.json
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "stream synced",
//	    "module": "tap-channeldock",
//	    "version": "v1.0.0",
//	    "stream": "products"
//	}
package logging
