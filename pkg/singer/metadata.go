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
	"encoding/json"
	"sort"
)

// Breadcrumb addresses a node in a stream schema; the empty breadcrumb is
// the stream itself.
type Breadcrumb []string

// MetadataEntry attaches metadata to a breadcrumb.
type MetadataEntry struct {
	Breadcrumb Breadcrumb `json:"breadcrumb" yaml:"breadcrumb"`
	Metadata   Metadata   `json:"metadata" yaml:"metadata"`
}

// Metadata is the union of stream- and property-level Singer metadata keys.
type Metadata struct {
	Inclusion               string   `json:"inclusion,omitempty" yaml:"inclusion,omitempty"`
	Selected                *bool    `json:"selected,omitempty" yaml:"selected,omitempty"`
	SelectedByDefault       *bool    `json:"selected-by-default,omitempty" yaml:"selected-by-default,omitempty"`
	TableKeyProperties      []string `json:"table-key-properties,omitempty" yaml:"table-key-properties,omitempty"`
	ForcedReplicationMethod string   `json:"forced-replication-method,omitempty" yaml:"forced-replication-method,omitempty"`
	ValidReplicationKeys    []string `json:"valid-replication-keys,omitempty" yaml:"valid-replication-keys,omitempty"`
	SchemaName              string   `json:"schema-name,omitempty" yaml:"schema-name,omitempty"`
}

// MarshalJSON keeps breadcrumbs as [] rather than null.
func (b Breadcrumb) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(b))
}

// StandardMetadata builds the metadata list for a stream: a root entry followed
// by one entry per property in name order. Key properties and the replication
// key are automatic.
func StandardMetadata(stream string, schema *Schema, keyProperties []string, replicationMethod, replicationKey string) []MetadataEntry {
	yes := true
	root := Metadata{
		Inclusion:               InclusionAvailable,
		SelectedByDefault:       &yes,
		TableKeyProperties:      keyProperties,
		ForcedReplicationMethod: replicationMethod,
		SchemaName:              stream,
	}
	if replicationKey != "" {
		root.ValidReplicationKeys = []string{replicationKey}
	}

	automatic := make(map[string]bool, len(keyProperties)+1)
	for _, k := range keyProperties {
		automatic[k] = true
	}
	if replicationKey != "" {
		automatic[replicationKey] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]MetadataEntry, 0, len(names)+1)
	entries = append(entries, MetadataEntry{Breadcrumb: Breadcrumb{}, Metadata: root})
	for _, name := range names {
		inclusion := InclusionAvailable
		if automatic[name] {
			inclusion = InclusionAutomatic
		}
		entries = append(entries, MetadataEntry{
			Breadcrumb: Breadcrumb{"properties", name},
			Metadata: Metadata{
				Inclusion:         inclusion,
				SelectedByDefault: &yes,
			},
		})
	}
	return entries
}
