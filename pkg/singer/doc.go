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

// Package singer models the subset of the Singer specification the tap speaks:
// JSON Schema documents, SCHEMA/RECORD/STATE messages, catalogs with stream
// metadata, and bookmark state.
//
// Messages are written one per line to standard output by a Writer:
//
//	w := singer.NewWriter(os.Stdout)
//	_ = w.WriteSchema("suppliers", schema, []string{"id"}, nil)
//	_ = w.WriteRecord("suppliers", record, time.Now())
//	_ = w.WriteState(state.Snapshot())
//
// Catalog selection follows the Singer metadata rules: a stream is synced when
// its root metadata entry is selected, and properties with inclusion
// "automatic" are always emitted.
package singer
