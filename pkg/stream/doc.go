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

// Package stream declares the Channeldock streams the tap can sync.
//
// A Stream couples an API list endpoint with the Singer metadata needed to
// describe it: schema, key properties, and replication method. Streams are
// created through a Factory so callers get them in a stable order:
//
//	factory := stream.NewDefaultFactory()
//	for _, s := range factory.Streams() {
//	    params := s.QueryParams(1, window)
//	    ...
//	}
//
// Available streams:
//
//   - products: seller inventory, incremental on stocking_date
//   - suppliers: seller suppliers, full table
package stream
