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
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPacedTransport_PauseFor(t *testing.T) {
	tr := &pacedTransport{lowPause: 5 * time.Second, criticalPause: 30 * time.Second}

	tests := []struct {
		remaining string
		want      time.Duration
	}{
		{"", 0},
		{"n/a", 0},
		{"500", 0},
		{"100", 0},
		{"99", 5 * time.Second},
		{"50", 5 * time.Second},
		{"49", 30 * time.Second},
		{"0", 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run("remaining="+tt.remaining, func(t *testing.T) {
			h := http.Header{}
			if tt.remaining != "" {
				h.Set(headerRateLimitRemaining, tt.remaining)
			}
			assert.Equal(t, tt.want, tr.pauseFor(h))
		})
	}
}
