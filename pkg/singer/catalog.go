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

package singer

import (
	"fmt"
	"slices"
)

// Replication methods.
const (
	ReplicationFullTable   = "FULL_TABLE"
	ReplicationIncremental = "INCREMENTAL"
)

// Inclusion values for property metadata.
const (
	InclusionAvailable   = "available"
	InclusionAutomatic   = "automatic"
	InclusionUnsupported = "unsupported"
)

// Catalog lists the streams a tap can sync.
type Catalog struct {
	Streams []*CatalogEntry `json:"streams" yaml:"streams"`
}

// CatalogEntry describes one stream.
type CatalogEntry struct {
	TapStreamID       string          `json:"tap_stream_id" yaml:"tap_stream_id"`
	Stream            string          `json:"stream" yaml:"stream"`
	Schema            *Schema         `json:"schema" yaml:"schema"`
	KeyProperties     []string        `json:"key_properties" yaml:"key_properties"`
	ReplicationKey    string          `json:"replication_key,omitempty" yaml:"replication_key,omitempty"`
	ReplicationMethod string          `json:"replication_method,omitempty" yaml:"replication_method,omitempty"`
	Metadata          []MetadataEntry `json:"metadata" yaml:"metadata"`
}

// Lookup returns the entry with the given tap_stream_id.
func (c *Catalog) Lookup(id string) (*CatalogEntry, bool) {
	if c == nil {
		return nil, false
	}
	for _, e := range c.Streams {
		if e.TapStreamID == id {
			return e, true
		}
	}
	return nil, false
}

// Validate checks for empty and duplicate stream ids.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Streams))
	for i, e := range c.Streams {
		if e == nil || e.TapStreamID == "" {
			return fmt.Errorf("catalog stream %d has no tap_stream_id", i)
		}
		if seen[e.TapStreamID] {
			return fmt.Errorf("catalog stream %q is listed more than once", e.TapStreamID)
		}
		seen[e.TapStreamID] = true
	}
	return nil
}

// IsSelected reports whether the stream should be synced.
func (e *CatalogEntry) IsSelected() bool {
	md := e.rootMetadata()
	if md == nil {
		return false
	}
	if md.Selected != nil {
		return *md.Selected
	}
	if md.SelectedByDefault != nil {
		return *md.SelectedByDefault
	}
	return false
}

// SelectedProperties returns the set of schema properties to emit.
func (e *CatalogEntry) SelectedProperties() map[string]bool {
	selected := make(map[string]bool)
	if e.Schema == nil {
		return selected
	}
	for name := range e.Schema.Properties {
		if e.propertySelected(name) {
			selected[name] = true
		}
	}
	return selected
}

func (e *CatalogEntry) propertySelected(name string) bool {
	md := e.metadataAt(Breadcrumb{"properties", name})
	if md == nil {
		return true
	}
	switch md.Inclusion {
	case InclusionAutomatic:
		return true
	case InclusionUnsupported:
		return false
	}
	if md.Selected != nil {
		return *md.Selected
	}
	if md.SelectedByDefault != nil {
		return *md.SelectedByDefault
	}
	return true
}

func (e *CatalogEntry) rootMetadata() *Metadata {
	return e.metadataAt(Breadcrumb{})
}

func (e *CatalogEntry) metadataAt(b Breadcrumb) *Metadata {
	for i := range e.Metadata {
		if slices.Equal(e.Metadata[i].Breadcrumb, b) {
			return &e.Metadata[i].Metadata
		}
	}
	return nil
}

// SetSelected marks the stream as selected or deselected.
func (e *CatalogEntry) SetSelected(selected bool) {
	if md := e.rootMetadata(); md != nil {
		md.Selected = &selected
		return
	}
	e.Metadata = append(e.Metadata, MetadataEntry{
		Breadcrumb: Breadcrumb{},
		Metadata:   Metadata{Selected: &selected},
	})
}
