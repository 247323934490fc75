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

import "time"

// MessageType identifies a Singer message.
type MessageType string

const (
	// MessageTypeSchema announces the schema of a stream.
	MessageTypeSchema MessageType = "SCHEMA"
	// MessageTypeRecord carries one row of a stream.
	MessageTypeRecord MessageType = "RECORD"
	// MessageTypeState carries the bookmarks to resume from.
	MessageTypeState MessageType = "STATE"
)

// SchemaMessage must precede the first RECORD of a stream.
type SchemaMessage struct {
	Type               MessageType `json:"type"`
	Stream             string      `json:"stream"`
	Schema             *Schema     `json:"schema"`
	KeyProperties      []string    `json:"key_properties"`
	BookmarkProperties []string    `json:"bookmark_properties,omitempty"`
}

// RecordMessage carries a single record.
type RecordMessage struct {
	Type          MessageType    `json:"type"`
	Stream        string         `json:"stream"`
	Record        map[string]any `json:"record"`
	TimeExtracted string         `json:"time_extracted,omitempty"`
}

// StateMessage carries the full tap state.
type StateMessage struct {
	Type  MessageType `json:"type"`
	Value any         `json:"value"`
}

// formatTimeExtracted renders t as RFC 3339 in UTC, or empty for the zero time.
func formatTimeExtracted(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
