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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := New()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "valid id is kept", header: "6f1c2a4e-8d9b-4a41-9a6e-4c3a1f0d2b7e", wantSame: true},
		{name: "missing id is generated", header: ""},
		{name: "invalid id is replaced", header: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = r.Context().Value(contextKeyRequestID).(string)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			w := httptest.NewRecorder()
			handler(w, req)

			got := w.Header().Get("X-Request-Id")
			if got != seen {
				t.Errorf("context id %q does not match header %q", seen, got)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("expected a UUID, got %q", got)
			}
			if tt.wantSame && got != tt.header {
				t.Errorf("expected %q, got %q", tt.header, got)
			}
		})
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := New()
	handler := s.withMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Code != "INTERNAL" {
		t.Errorf("expected code INTERNAL, got %s", resp.Code)
	}
	if resp.RequestID != w.Header().Get("X-Request-Id") {
		t.Errorf("expected request id %s, got %s", w.Header().Get("X-Request-Id"), resp.RequestID)
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Status() != http.StatusOK {
		t.Errorf("expected default status 200, got %d", rw.Status())
	}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot)
	if rw.Status() != http.StatusAccepted {
		t.Errorf("expected first status to win, got %d", rw.Status())
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("expected recorder status 202, got %d", rec.Code)
	}
}
