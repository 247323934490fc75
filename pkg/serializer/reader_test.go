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

package serializer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.json", FormatJSON},
		{"CONFIG.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"state", FormatJSON},
		{"https://example.com/catalog.yaml?token=abc", FormatYAML},
		{"https://example.com/state.json#frag", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := NewReader(FormatJSON, nil); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr bool
	}{
		{"json", FormatJSON, `{"tap":"tap-channeldock","settings":[{"name":"api_key","required":true}]}`, false},
		{"yaml", FormatYAML, "tap: tap-channeldock\nsettings:\n  - name: api_key\n    required: true\n", false},
		{"invalid json", FormatJSON, `{"tap":`, true},
		{"empty yaml", FormatYAML, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}

			var doc testDocument
			err = r.Deserialize(&doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if doc.Tap != "tap-channeldock" || len(doc.Settings) != 1 || !doc.Settings[0].Required {
				t.Errorf("unexpected document: %+v", doc)
			}
		})
	}
}

func TestFromFile_Local(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	yamlPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(jsonPath, []byte(`{"api_key":"k","api_secret":"s"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte("api_key: k\napi_secret: s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		got, err := FromFile[map[string]any](context.Background(), path)
		if err != nil {
			t.Fatalf("FromFile(%s) failed: %v", path, err)
		}
		if (*got)["api_key"] != "k" || (*got)["api_secret"] != "s" {
			t.Errorf("unexpected config from %s: %v", path, *got)
		}
	}
}

func TestFromFile_Errors(t *testing.T) {
	if _, err := FromFile[map[string]any](context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile[map[string]any](context.Background(), bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestFromFile_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/state.json":
			fmt.Fprint(w, `{"bookmarks":{"products":{"replication_key_value":"2024-01-01 00:00:00"}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	got, err := FromFile[map[string]any](context.Background(), srv.URL+"/state.json")
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if _, ok := (*got)["bookmarks"]; !ok {
		t.Errorf("expected bookmarks key, got %v", *got)
	}

	if _, err := FromFile[map[string]any](context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Error("expected error for 404")
	}
}
