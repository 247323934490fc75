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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tap-channeldock/tap-channeldock/pkg/defaults"
	cerrors "github.com/tap-channeldock/tap-channeldock/pkg/errors"
	"github.com/tap-channeldock/tap-channeldock/pkg/serializer"
	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
)

const (
	// EnvSource is the --config value that enables environment merging.
	EnvSource = "ENV"

	// EnvPrefix prefixes every setting read from the environment.
	EnvPrefix = "TAP_CHANNELDOCK_"

	// DotEnvFile is loaded from the working directory when EnvSource is given.
	DotEnvFile = ".env"

	// DefaultBaseURL is the Channeldock API host.
	DefaultBaseURL = defaults.BaseURL
)

// Setting keys.
const (
	KeyAPIKey    = "api_key"
	KeyAPISecret = "api_secret"
	KeyStartDate = "start_date"
	KeyBaseURL   = "base_url"
	KeyUserAgent = "user_agent"
)

// Config is the effective tap configuration.
type Config struct {
	APIKey    string `json:"api_key" yaml:"api_key"`
	APISecret string `json:"api_secret" yaml:"api_secret"`
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	BaseURL   string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`

	startTime time.Time
}

// Setting describes one configuration key.
type Setting struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Required    bool   `json:"required" yaml:"required"`
	Secret      bool   `json:"secret" yaml:"secret"`
	Description string `json:"description" yaml:"description"`
}

// EnvVar returns the environment variable that overrides the setting.
func (s Setting) EnvVar() string {
	return EnvPrefix + strings.ToUpper(s.Name)
}

// Settings returns the recognized settings in documentation order.
func Settings() []Setting {
	return []Setting{
		{Name: KeyAPIKey, Kind: "string", Required: true, Secret: true,
			Description: "API key for Channeldock authentication"},
		{Name: KeyAPISecret, Kind: "string", Required: true, Secret: true,
			Description: "API secret for Channeldock authentication"},
		{Name: KeyStartDate, Kind: "date_iso8601",
			Description: "The earliest date to sync data from (ISO 8601 format)"},
		{Name: KeyBaseURL, Kind: "string",
			Description: "Channeldock API base URL (default " + DefaultBaseURL + ")"},
		{Name: KeyUserAgent, Kind: "string",
			Description: "User-Agent header sent with every request"},
	}
}

// JSONSchema returns the settings as a JSON Schema object.
func JSONSchema() *singer.Schema {
	props := make([]singer.Property, 0, len(Settings()))
	for _, s := range Settings() {
		var schema *singer.Schema
		if s.Kind == "date_iso8601" {
			schema = singer.DateTime(s.Description)
		} else {
			schema = singer.String(s.Description)
		}
		schema.Secret = s.Secret
		if s.Required {
			props = append(props, singer.RequiredProp(s.Name, schema))
		} else {
			props = append(props, singer.Prop(s.Name, schema))
		}
	}
	return singer.NewObject(props...)
}

// Load reads, merges and validates the configuration from sources.
func Load(ctx context.Context, sources []string) (*Config, error) {
	merged := make(map[string]any)
	parseEnv := false

	for _, src := range sources {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if src == EnvSource {
			parseEnv = true
			continue
		}
		doc, err := serializer.FromFile[map[string]any](ctx, src)
		if err != nil {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
				"failed to read config", err, map[string]any{"source": src})
		}
		for k, v := range *doc {
			merged[k] = v
		}
	}

	if parseEnv {
		if err := loadDotEnv(DotEnvFile); err != nil {
			return nil, err
		}
		mergeEnv(merged)
	}

	return FromMap(merged)
}

// FromMap decodes and validates a configuration map.
func FromMap(m map[string]any) (*Config, error) {
	known := make(map[string]bool, len(Settings()))
	for _, s := range Settings() {
		known[s.Name] = true
	}
	for k := range m {
		if !known[k] {
			slog.Debug("ignoring unknown config key", "key", k)
		}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "failed to encode config", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "config values must be strings", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "failed to stat "+path, err)
	}
	// godotenv.Load leaves variables already present in the environment alone.
	if err := godotenv.Load(path); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "failed to load "+path, err)
	}
	slog.Debug("loaded environment file", "path", path)
	return nil
}

func mergeEnv(m map[string]any) {
	for _, s := range Settings() {
		if v, ok := os.LookupEnv(s.EnvVar()); ok && v != "" {
			m[s.Name] = v
		}
	}
}

// Validate checks required settings and normalizes optional ones.
func (c *Config) Validate() error {
	var problems []string

	c.APIKey = strings.TrimSpace(c.APIKey)
	c.APISecret = strings.TrimSpace(c.APISecret)
	if c.APIKey == "" {
		problems = append(problems, KeyAPIKey+" is required")
	}
	if c.APISecret == "" {
		problems = append(problems, KeyAPISecret+" is required")
	}

	if c.StartDate != "" {
		t, err := ParseDate(c.StartDate)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", KeyStartDate, err))
		} else {
			c.startTime = t
		}
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		problems = append(problems, fmt.Sprintf("%s must be an http(s) URL, got %q", KeyBaseURL, c.BaseURL))
	}

	if len(problems) > 0 {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			"invalid config: "+strings.Join(problems, "; "),
			map[string]any{"problems": problems})
	}
	return nil
}

// StartTime returns the parsed start_date and whether one was configured.
func (c *Config) StartTime() (time.Time, bool) {
	return c.startTime, !c.startTime.IsZero()
}

// StartDay returns the calendar date as written in start_date, with no zone
// conversion. Empty when start_date is not set.
func (c *Config) StartDay() string {
	day, _, _ := strings.Cut(strings.TrimSpace(c.StartDate), "T")
	day, _, _ = strings.Cut(day, " ")
	return day
}

// Redacted returns a copy safe to log.
func (c *Config) Redacted() map[string]string {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "****"
	}
	return map[string]string{
		KeyAPIKey:    mask(c.APIKey),
		KeyAPISecret: mask(c.APISecret),
		KeyStartDate: c.StartDate,
		KeyBaseURL:   c.BaseURL,
		KeyUserAgent: c.UserAgent,
	}
}
