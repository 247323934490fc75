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

package channeldock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tap-channeldock/tap-channeldock/pkg/defaults"
	cerrors "github.com/tap-channeldock/tap-channeldock/pkg/errors"
)

// Page is one decoded page of a list endpoint.
type Page struct {
	// Records holds the object elements of the records array.
	Records []map[string]any
	// Size is the raw length of the records array.
	Size int
	// Count is the <entity>_count value, or 0 when absent.
	Count int
}

// HasNext reports whether another page should be requested.
func (p *Page) HasNext(pageSize int) bool {
	return p.Count > 0 && p.Size >= pageSize
}

func parsePage(body []byte, recordsKey string) (*Page, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeUpstream,
			"invalid JSON response", err, map[string]any{"body": excerpt(body)})
	}

	if status, _ := doc["response"].(string); status == "error" {
		msg, _ := doc["message"].(string)
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, cerrors.NewWithContext(cerrors.ErrCodeUpstream,
			fmt.Sprintf("API error: %s", msg), map[string]any{"message": msg})
	}

	page := &Page{Count: countOf(doc, recordsKey)}
	if raw, ok := doc[recordsKey].([]any); ok {
		page.Size = len(raw)
		page.Records = make([]map[string]any, 0, len(raw))
		for _, item := range raw {
			if rec, ok := item.(map[string]any); ok {
				page.Records = append(page.Records, rec)
			}
		}
	}
	return page, nil
}

// countOf prefers <recordsKey>_count and falls back to the first integer
// *_count field in key order.
func countOf(doc map[string]any, recordsKey string) int {
	if n, ok := asInt(doc[recordsKey+"_count"]); ok {
		return n
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		if strings.HasSuffix(k, "_count") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if n, ok := asInt(doc[k]); ok {
			return n
		}
	}
	return 0
}

func asInt(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return int(i), true
}

func excerpt(body []byte) string {
	s := string(body)
	n := 0
	for i := range s {
		if n == defaults.ErrorBodyExcerpt {
			return s[:i]
		}
		n++
	}
	return s
}
