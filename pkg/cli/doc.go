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

// Package cli implements the tap-channeldock command line.
//
// The binary has a single root command. Its mode is picked from the flags,
// with --about taking precedence over --discover; anything else runs a sync:
//
//	tap-channeldock --about [--format text|table|json|yaml|markdown]
//	tap-channeldock --config config.json --discover > catalog.json
//	tap-channeldock --config config.json --catalog catalog.json --state state.json
//
// # Configuration
//
// --config may be repeated. Files are merged in order, later keys winning.
// The literal value ENV merges TAP_CHANNELDOCK_* environment variables on top,
// after loading a .env file from the working directory when one exists:
//
//	tap-channeldock --config=ENV --discover
//
// Config, catalog and state paths may also be http(s) URLs.
//
// # Global Flags
//
//	--config       Config file path, URL or ENV (repeatable)
//	--discover     Write the catalog to stdout
//	--about        Write tap metadata to stdout
//	--format       --about output format (default: text)
//	--catalog      Catalog selecting streams and properties
//	--state        State file with bookmarks from a previous run
//	--test         all: one record per stream, schema: SCHEMA messages only
//	--log-level    debug, info, warn, error (env LOG_LEVEL)
//	--metrics-addr Serve /metrics and /healthz while syncing
//	--help, -h     Show help
//	--version, -v  Show version information
//
// Singer messages are written to stdout. Logs go to stderr as JSON. Any
// failure exits with status 1.
package cli
