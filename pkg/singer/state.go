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
	"fmt"
	"maps"
	"sync"
)

// Bookmark records how far an incremental stream has been synced.
type Bookmark struct {
	ReplicationKey      string `json:"replication_key,omitempty" yaml:"replication_key,omitempty"`
	ReplicationKeyValue any    `json:"replication_key_value,omitempty" yaml:"replication_key_value,omitempty"`
}

// StateDocument is the serialized form of State.
type StateDocument struct {
	Bookmarks map[string]Bookmark `json:"bookmarks" yaml:"bookmarks"`
}

// State holds per-stream bookmarks. It is safe for concurrent use.
type State struct {
	mu        sync.RWMutex
	bookmarks map[string]Bookmark
}

// NewState returns an empty state.
func NewState() *State {
	return &State{bookmarks: make(map[string]Bookmark)}
}

// NewStateFromDocument builds a state from a decoded document. A nil document
// yields an empty state.
func NewStateFromDocument(doc *StateDocument) *State {
	s := NewState()
	if doc != nil {
		maps.Copy(s.bookmarks, doc.Bookmarks)
	}
	return s
}

// ParseState decodes a JSON state document.
func ParseState(data []byte) (*State, error) {
	var doc StateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return NewStateFromDocument(&doc), nil
}

// Bookmark returns the bookmark for stream, if any.
func (s *State) Bookmark(stream string) (Bookmark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookmarks[stream]
	return b, ok
}

// BookmarkValue returns the replication key value for stream as a string,
// or "" when there is no usable value.
func (s *State) BookmarkValue(stream string) string {
	b, ok := s.Bookmark(stream)
	if !ok || b.ReplicationKeyValue == nil {
		return ""
	}
	if v, ok := b.ReplicationKeyValue.(string); ok {
		return v
	}
	return fmt.Sprint(b.ReplicationKeyValue)
}

// SetBookmark replaces the bookmark for stream.
func (s *State) SetBookmark(stream, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks[stream] = Bookmark{ReplicationKey: key, ReplicationKeyValue: value}
}

// Snapshot returns a copy of the state suitable for a STATE message.
func (s *State) Snapshot() StateDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StateDocument{Bookmarks: maps.Clone(s.bookmarks)}
}
