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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "stream not found")

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "stream not found" {
		t.Errorf("expected message 'stream not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("503 Service Unavailable")
	ctx := map[string]any{
		"path":   "/portal/api/v2/seller/suppliers",
		"status": 503,
	}

	err := WrapWithContext(ErrCodeUnavailable, "channeldock request failed", cause, ctx)

	if err.Code != ErrCodeUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeUnavailable, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
	if err.Context["status"] != 503 {
		t.Errorf("expected status 503 in context, got %v", err.Context["status"])
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidRequest, "api_key is required"),
			expected: "[INVALID_REQUEST] api_key is required",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeUpstream, "api error", errors.New("invalid page")),
			expected: "[UPSTREAM_ERROR] api error: invalid page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	inner := New(ErrCodeUnauthorized, "credentials rejected")
	wrapped := fmt.Errorf("sync products: %w", inner)

	if got := CodeOf(wrapped); got != ErrCodeUnauthorized {
		t.Errorf("expected %s, got %s", ErrCodeUnauthorized, got)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code, got %s", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("expected empty code for nil, got %s", got)
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeRateLimitExceeded, "429")
	outer := Wrap(ErrCodeInternal, "sync failed", fmt.Errorf("page 3: %w", inner))

	if !HasCode(outer, ErrCodeInternal) {
		t.Error("expected outer code to match")
	}
	if !HasCode(outer, ErrCodeRateLimitExceeded) {
		t.Error("expected nested code to match")
	}
	if HasCode(outer, ErrCodeNotFound) {
		t.Error("did not expect NOT_FOUND")
	}
}
