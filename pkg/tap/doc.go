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

// Package tap implements discovery and sync for the Channeldock Singer tap.
//
// Discover builds a catalog from the stream factory. Sync reads the selected
// streams page by page and writes Singer messages to the configured output:
//
//	t := tap.New(cfg, version, os.Stdout)
//	t.Catalog = catalog // optional, defaults to the discovered catalog
//	t.State = state     // optional bookmarks from a previous run
//	if err := t.Sync(ctx); err != nil {
//	    return err
//	}
//
// Each stream writes a SCHEMA message, its RECORD messages and finally a
// STATE message carrying every bookmark known so far. Streams run
// concurrently, bounded by defaults.MaxParallelStreams. The first failing
// stream cancels the others.
//
// Incremental streams request a window ending at the time the sync started.
// When the stream completes, that end time becomes its bookmark so the next
// run resumes where this one stopped.
package tap
