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
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m), "line: %s", scanner.Text())
		out = append(out, m)
	}
	require.NoError(t, scanner.Err())
	return out
}

func TestWriter_Messages(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	schema := NewObject(RequiredProp("id", Integer("")))
	extracted := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	require.NoError(t, w.WriteSchema("suppliers", schema, nil, nil))
	require.NoError(t, w.WriteRecord("suppliers", map[string]any{"id": 7}, extracted))
	require.NoError(t, w.WriteState(StateDocument{Bookmarks: map[string]Bookmark{}}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "SCHEMA", lines[0]["type"])
	assert.Equal(t, "suppliers", lines[0]["stream"])
	assert.Equal(t, []any{}, lines[0]["key_properties"])
	assert.NotContains(t, lines[0], "bookmark_properties")

	assert.Equal(t, "RECORD", lines[1]["type"])
	assert.Equal(t, map[string]any{"id": float64(7)}, lines[1]["record"])
	assert.Equal(t, "2025-03-01T11:00:00Z", lines[1]["time_extracted"])

	assert.Equal(t, "STATE", lines[2]["type"])
	assert.Equal(t, map[string]any{"bookmarks": map[string]any{}}, lines[2]["value"])

	assert.Equal(t, 1, w.Count(MessageTypeSchema))
	assert.Equal(t, 1, w.Count(MessageTypeRecord))
	assert.Equal(t, 1, w.Count(MessageTypeState))
}

func TestWriter_ConcurrentLinesStayIntact(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = w.WriteRecord(fmt.Sprintf("s%d", g), map[string]any{"i": i}, time.Time{})
			}
		}(g)
	}
	wg.Wait()

	lines := decodeLines(t, &buf)
	assert.Len(t, lines, 400)
	assert.Equal(t, 400, w.Count(MessageTypeRecord))
	assert.NotContains(t, lines[0], "time_extracted")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_WriteError(t *testing.T) {
	w := NewWriter(failingWriter{})
	err := w.WriteState(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Zero(t, w.Count(MessageTypeState))
}

func TestWriter_EncodeError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	err := w.WriteRecord("s", map[string]any{"bad": make(chan int)}, time.Time{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
