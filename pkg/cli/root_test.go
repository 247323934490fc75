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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tap-channeldock/tap-channeldock/pkg/config"
	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
	"github.com/tap-channeldock/tap-channeldock/pkg/tap"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newRootCmd(&stdout, &stderr).Run(context.Background(), append([]string{name}, args...))
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, file string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeConfig(t *testing.T, extra map[string]any) string {
	t.Helper()
	cfg := map[string]any{"api_key": "key", "api_secret": "secret"}
	for k, v := range extra {
		cfg[k] = v
	}
	return writeFile(t, t.TempDir(), "config.json", cfg)
}

func clearTapEnv(t *testing.T) {
	t.Helper()
	for _, s := range config.Settings() {
		t.Setenv(s.EnvVar(), "")
		require.NoError(t, os.Unsetenv(s.EnvVar()))
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCmd(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "tap-channeldock version dev\n", out)
}

func TestHelpFlag(t *testing.T) {
	out, err := runCmd(t, "--help")
	require.NoError(t, err)
	for _, flag := range []string{"--config", "--discover", "--about", "--catalog", "--state"} {
		assert.Contains(t, out, flag)
	}
}

func TestAbout(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{
			name: "json",
			args: []string{"--about", "--format", "json"},
			check: func(t *testing.T, out string) {
				var about tap.About
				require.NoError(t, json.Unmarshal([]byte(out), &about))
				assert.Equal(t, "tap-channeldock", about.Name)
				assert.Equal(t, []string{"products", "suppliers"}, about.Streams)
				require.NotNil(t, about.Settings)
				assert.Contains(t, about.Settings.Properties, "api_key")
			},
		},
		{
			name: "yaml",
			args: []string{"--about", "--format", "yaml"},
			check: func(t *testing.T, out string) {
				var about map[string]any
				require.NoError(t, yaml.Unmarshal([]byte(out), &about))
				assert.Equal(t, "tap-channeldock", about["name"])
				assert.Equal(t, []any{"products", "suppliers"}, about["streams"])
			},
		},
		{
			name: "markdown",
			args: []string{"--about", "--format", "markdown"},
			check: func(t *testing.T, out string) {
				assert.True(t, strings.HasPrefix(out, "# tap-channeldock\n"))
				assert.Contains(t, out, "## Capabilities")
				assert.Contains(t, out, "## Settings")
				assert.Contains(t, out, "## Supported Streams")
				assert.Contains(t, out, "| api_key | string | yes | yes |")
				assert.Contains(t, out, "| start_date | string (date-time) | no | no |")
				assert.Contains(t, out, "- `products`")
			},
		},
		{
			name: "text by default",
			args: []string{"--about"},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "tap-channeldock")
				assert.Contains(t, out, "suppliers")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTapEnv(t)
			out, err := runCmd(t, tt.args...)
			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestAbout_UnknownFormat(t *testing.T) {
	_, err := runCmd(t, "--about", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestDiscover(t *testing.T) {
	clearTapEnv(t)
	out, err := runCmd(t, "--config", writeConfig(t, nil), "--discover")
	require.NoError(t, err)

	var catalog singer.Catalog
	require.NoError(t, json.Unmarshal([]byte(out), &catalog))
	require.Len(t, catalog.Streams, 2)
	assert.Equal(t, "products", catalog.Streams[0].TapStreamID)
	assert.Equal(t, "INCREMENTAL", catalog.Streams[0].ReplicationMethod)
	assert.Equal(t, "suppliers", catalog.Streams[1].TapStreamID)
	assert.True(t, catalog.Streams[1].IsSelected())
}

func TestDiscover_FromEnv(t *testing.T) {
	clearTapEnv(t)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("TAP_CHANNELDOCK_API_KEY=from-dotenv\n"), 0o600))
	t.Setenv("TAP_CHANNELDOCK_API_SECRET", "from-env")

	out, err := runCmd(t, "--config=ENV", "--discover")
	require.NoError(t, err)
	assert.Contains(t, out, `"tap_stream_id": "products"`)
}

func TestDiscover_RequiresConfig(t *testing.T) {
	clearTapEnv(t)
	_, err := runCmd(t, "--discover")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestInvalidTestMode(t *testing.T) {
	_, err := runCmd(t, "--config", writeConfig(t, nil), "--test", "everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid test mode")
}

type fakeAPI struct {
	mu      sync.Mutex
	queries map[string][]string
	agents  []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{queries: map[string][]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.queries[r.URL.Path] = append(api.queries[r.URL.Path], r.URL.RawQuery)
		api.agents = append(api.agents, r.Header.Get("User-Agent"))
		api.mu.Unlock()

		if r.Header.Get("api_key") != "key" || r.Header.Get("api_secret") != "secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/portal/api/v2/seller/inventory":
			fmt.Fprint(w, `{"response":"success","products_count":1,"products":[{"id":7,"sku":"A-1","stocking_date":"2024-05-01 10:00:00","tags":["x"]}]}`)
		case "/portal/api/v2/seller/suppliers":
			fmt.Fprint(w, `{"response":"success","suppliers_count":1,"suppliers":[{"id":3,"company":"Acme"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) calls(path string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queries[path]
}

func (a *fakeAPI) userAgents() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.agents...)
}

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var msgs []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		msgs = append(msgs, m)
	}
	return msgs
}

func TestSync(t *testing.T) {
	api, srv := newFakeAPI(t)
	cfg := writeConfig(t, map[string]any{"base_url": srv.URL})
	state := writeFile(t, t.TempDir(), "state.json", map[string]any{
		"bookmarks": map[string]any{
			"products": map[string]any{"replication_key": "stocking_date", "replication_key_value": "2024-04-01 00:00:00"},
		},
	})

	out, err := runCmd(t, "--config", cfg, "--state", state)
	require.NoError(t, err)

	counts := map[string]int{}
	var lastState map[string]any
	for _, m := range decodeLines(t, out) {
		stream, _ := m["stream"].(string)
		counts[m["type"].(string)+"/"+stream]++
		if m["type"] == "STATE" {
			lastState = m["value"].(map[string]any)
		}
	}
	assert.Equal(t, 1, counts["SCHEMA/products"])
	assert.Equal(t, 1, counts["RECORD/products"])
	assert.Equal(t, 1, counts["SCHEMA/suppliers"])
	assert.Equal(t, 1, counts["RECORD/suppliers"])

	require.NotNil(t, lastState)
	products := lastState["bookmarks"].(map[string]any)["products"].(map[string]any)
	assert.NotEqual(t, "2024-04-01 00:00:00", products["replication_key_value"])

	queries := api.calls("/portal/api/v2/seller/inventory")
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0], "start_date=2024-04-01+00%3A00%3A00")
}

func TestSync_MissingStateFile(t *testing.T) {
	api, srv := newFakeAPI(t)
	cfg := writeConfig(t, map[string]any{"base_url": srv.URL})
	state := filepath.Join(t.TempDir(), "state.json")

	out, err := runCmd(t, "--config", cfg, "--state", state)
	require.NoError(t, err)

	var records int
	for _, m := range decodeLines(t, out) {
		if m["type"] == "RECORD" {
			records++
		}
	}
	assert.Equal(t, 2, records)

	queries := api.calls("/portal/api/v2/seller/inventory")
	require.Len(t, queries, 1)
	assert.NotContains(t, queries[0], "start_date=")
}

func TestSync_InvalidStateFile(t *testing.T) {
	_, srv := newFakeAPI(t)
	cfg := writeConfig(t, map[string]any{"base_url": srv.URL})
	state := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(state, []byte("{not json"), 0o600))

	_, err := runCmd(t, "--config", cfg, "--state", state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load state")
}

func TestSync_DefaultUserAgent(t *testing.T) {
	previous := version
	version = "1.2.3"
	t.Cleanup(func() { version = previous })

	api, srv := newFakeAPI(t)
	cfg := writeConfig(t, map[string]any{"base_url": srv.URL})

	_, err := runCmd(t, "--config", cfg)
	require.NoError(t, err)

	agents := api.userAgents()
	require.NotEmpty(t, agents)
	for _, ua := range agents {
		assert.Equal(t, "tap-channeldock/1.2.3", ua)
	}
}

func TestSync_WithCatalog(t *testing.T) {
	api, srv := newFakeAPI(t)
	cfg := writeConfig(t, map[string]any{"base_url": srv.URL})

	discovered, err := runCmd(t, "--config", cfg, "--discover")
	require.NoError(t, err)
	var catalog singer.Catalog
	require.NoError(t, json.Unmarshal([]byte(discovered), &catalog))
	entry, ok := catalog.Lookup("products")
	require.True(t, ok)
	entry.SetSelected(false)
	catalogPath := writeFile(t, t.TempDir(), "catalog.json", catalog)

	out, err := runCmd(t, "--config", cfg, "--catalog", catalogPath)
	require.NoError(t, err)

	for _, m := range decodeLines(t, out) {
		assert.NotEqual(t, "products", m["stream"])
	}
	assert.Empty(t, api.calls("/portal/api/v2/seller/inventory"))
	assert.Len(t, api.calls("/portal/api/v2/seller/suppliers"), 1)
}

func TestSync_TestModeSchemaWithMetrics(t *testing.T) {
	api, srv := newFakeAPI(t)
	cfg := writeConfig(t, map[string]any{"base_url": srv.URL})

	out, err := runCmd(t, "--config", cfg, "--test", "schema", "--metrics-addr", "127.0.0.1:0")
	require.NoError(t, err)

	msgs := decodeLines(t, out)
	assert.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.Equal(t, "SCHEMA", m["type"])
	}
	assert.Empty(t, api.calls("/portal/api/v2/seller/suppliers"))
}

func TestSync_Unauthorized(t *testing.T) {
	_, srv := newFakeAPI(t)
	cfg := writeFile(t, t.TempDir(), "config.json", map[string]any{
		"api_key": "wrong", "api_secret": "secret", "base_url": srv.URL,
	})

	_, err := runCmd(t, "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
