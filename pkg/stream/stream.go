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

package stream

import (
	"net/url"
	"strconv"
	"time"

	"github.com/tap-channeldock/tap-channeldock/pkg/config"
	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
)

// Window bounds one sync of an incremental stream.
type Window struct {
	// Start is the lower bound sent to the API. Zero means unbounded.
	Start time.Time
	// End is fixed once per sync and becomes the bookmark on success.
	End time.Time
	// DateFrom is the calendar date of the configured start date, as written.
	// Empty when not configured.
	DateFrom string
}

// Stream describes one Channeldock list endpoint.
type Stream struct {
	Name              string
	Path              string
	RecordsKey        string
	KeyProperties     []string
	ReplicationMethod string
	ReplicationKey    string
	Schema            *singer.Schema

	// Params adds stream specific query parameters.
	Params func(q url.Values, w Window)
	// PostProcess rewrites a record before it is emitted.
	PostProcess func(rec map[string]any) map[string]any
}

// IsIncremental reports whether the stream keeps a bookmark.
func (s *Stream) IsIncremental() bool {
	return s.ReplicationMethod == singer.ReplicationIncremental && s.ReplicationKey != ""
}

// QueryParams returns the query for the given 1-based page.
func (s *Stream) QueryParams(page int, w Window) url.Values {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if s.Params != nil {
		s.Params(q, w)
	}
	return q
}

// Process post-processes rec. Empty records are dropped and report false.
func (s *Stream) Process(rec map[string]any) (map[string]any, bool) {
	if len(rec) == 0 {
		return nil, false
	}
	if s.PostProcess != nil {
		rec = s.PostProcess(rec)
	}
	return rec, len(rec) > 0
}

// BookmarkProperties returns the SCHEMA message bookmark properties.
func (s *Stream) BookmarkProperties() []string {
	if !s.IsIncremental() {
		return nil
	}
	return []string{s.ReplicationKey}
}

// CatalogEntry returns the discovered catalog entry, selected by default.
func (s *Stream) CatalogEntry() *singer.CatalogEntry {
	return &singer.CatalogEntry{
		TapStreamID:       s.Name,
		Stream:            s.Name,
		Schema:            s.Schema,
		KeyProperties:     append([]string(nil), s.KeyProperties...),
		ReplicationKey:    s.ReplicationKey,
		ReplicationMethod: s.ReplicationMethod,
		Metadata:          singer.StandardMetadata(s.Name, s.Schema, s.KeyProperties, s.ReplicationMethod, s.ReplicationKey),
	}
}

// formatAPIDate formats t for query parameters, or "" for the zero time.
func formatAPIDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return config.FormatAPIDate(t)
}
