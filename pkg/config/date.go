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

package config

import (
	"fmt"
	"time"
)

// APIDateLayout is the timestamp layout the Channeldock API accepts and returns.
const APIDateLayout = "2006-01-02 15:04:05"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	APIDateLayout,
	time.DateOnly,
}

// ParseDate parses an ISO 8601 date or date-time, or the API layout.
// Values without a zone are UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, want ISO 8601 or %q", s, APIDateLayout)
}

// FormatAPIDate renders t in the API layout, in UTC.
func FormatAPIDate(t time.Time) string {
	return t.UTC().Format(APIDateLayout)
}
