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

// Package serializer encodes and decodes the tap's documents in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Used for catalogs, state, config and --about --format json
//
// YAML:
//   - Human-readable with preserved structure
//   - Accepted for config files; --about --format yaml
//
// Table:
//   - Flattened FIELD/VALUE listing for terminals
//   - Write-only (no deserialization support)
//
// # Reading
//
// FromFile picks the format from the path extension and accepts local paths
// as well as http(s) URLs, so config, catalog and state documents can be
// served remotely:
//
//	cfg, err := serializer.FromFile[map[string]any](ctx, "https://example.com/config.json")
//
// # Writing
//
//	w := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	if err := w.Serialize(ctx, catalog); err != nil {
//	    return err
//	}
package serializer
