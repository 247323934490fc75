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

package tap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tap-channeldock/tap-channeldock/pkg/channeldock"
	"github.com/tap-channeldock/tap-channeldock/pkg/config"
	"github.com/tap-channeldock/tap-channeldock/pkg/defaults"
	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
	"github.com/tap-channeldock/tap-channeldock/pkg/stream"
)

// Name is the tap executable name.
const Name = "tap-channeldock"

// Pager fetches one page of a list endpoint.
type Pager interface {
	GetPage(ctx context.Context, path string, params url.Values, recordsKey string) (*channeldock.Page, error)
}

// TestMode limits what a sync does.
type TestMode string

const (
	// TestModeNone runs a full sync.
	TestModeNone TestMode = ""
	// TestModeAll syncs at most one record per stream.
	TestModeAll TestMode = "all"
	// TestModeSchema only writes SCHEMA messages.
	TestModeSchema TestMode = "schema"
)

// ParseTestMode parses a --test value. An empty string disables test mode.
func ParseTestMode(s string) (TestMode, error) {
	switch m := TestMode(strings.ToLower(strings.TrimSpace(s))); m {
	case TestModeNone, TestModeAll, TestModeSchema:
		return m, nil
	default:
		return TestModeNone, fmt.Errorf("invalid test mode %q: must be %q or %q", s, TestModeAll, TestModeSchema)
	}
}

// Tap discovers and syncs Channeldock streams.
type Tap struct {
	Config  *config.Config
	Client  Pager
	Factory stream.Factory
	Output  *singer.Writer

	// Catalog selects streams and properties. Nil syncs the discovered catalog.
	Catalog *singer.Catalog
	// State carries bookmarks in and out of a sync.
	State *singer.State

	TestMode    TestMode
	Parallelism int
	Logger      *slog.Logger
	Now         func() time.Time
}

// New creates a Tap for cfg writing Singer messages to out. The version is
// reported in the default User-Agent.
func New(cfg *config.Config, version string, out io.Writer) *Tap {
	return &Tap{
		Config:  cfg,
		Client:  NewClient(cfg, version),
		Factory: stream.NewDefaultFactory(),
		Output:  singer.NewWriter(out),
		State:   singer.NewState(),
	}
}

// NewClient creates a Channeldock client for cfg. Without a configured
// user_agent the client identifies itself as UserAgent(version).
func NewClient(cfg *config.Config, version string) *channeldock.Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = UserAgent(version)
	}
	return channeldock.New(cfg.APIKey, cfg.APISecret,
		channeldock.WithBaseURL(cfg.BaseURL),
		channeldock.WithUserAgent(userAgent),
	)
}

// UserAgent returns the default User-Agent for version.
func UserAgent(version string) string {
	if version == "" {
		return Name
	}
	return Name + "/" + version
}

func (t *Tap) init() {
	if t.Logger == nil {
		t.Logger = slog.Default()
	}
	if t.Factory == nil {
		t.Factory = stream.NewDefaultFactory()
	}
	if t.State == nil {
		t.State = singer.NewState()
	}
	if t.Parallelism <= 0 {
		t.Parallelism = defaults.MaxParallelStreams
	}
	if t.Now == nil {
		t.Now = time.Now
	}
}

// Discover returns the catalog of every stream, all selected by default.
func (t *Tap) Discover() *singer.Catalog {
	t.init()
	streams := t.Factory.Streams()
	catalog := &singer.Catalog{Streams: make([]*singer.CatalogEntry, 0, len(streams))}
	for _, s := range streams {
		catalog.Streams = append(catalog.Streams, s.CatalogEntry())
	}
	return catalog
}

type selection struct {
	stream     *stream.Stream
	properties map[string]bool
}

// Sync syncs every selected stream.
func (t *Tap) Sync(ctx context.Context) error {
	t.init()
	if t.Config == nil || t.Client == nil || t.Output == nil {
		return fmt.Errorf("tap is not configured: config, client and output are required")
	}

	runID := uuid.NewString()
	logger := t.Logger.With(slog.String("run_id", runID))

	selected, err := t.selectStreams(logger)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		logger.Warn("no streams selected")
		return nil
	}

	end := t.Now().UTC().Truncate(time.Second)
	logger.Info("starting sync",
		slog.Int("streams", len(selected)),
		slog.String("end_date", config.FormatAPIDate(end)),
		slog.String("test_mode", string(t.TestMode)))

	syncStart := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.Parallelism)
	for _, sel := range selected {
		g.Go(func() error {
			return t.runStream(gctx, logger, sel, end)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		return err
	}

	logger.Info("sync complete",
		slog.Int("records", t.Output.Count(singer.MessageTypeRecord)),
		slog.Duration("duration", time.Since(syncStart)))
	return nil
}

// selectStreams resolves the catalog against the factory, in factory order.
func (t *Tap) selectStreams(logger *slog.Logger) ([]selection, error) {
	catalog := t.Catalog
	if catalog == nil {
		catalog = t.Discover()
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	streams := t.Factory.Streams()
	known := make(map[string]bool, len(streams))
	for _, s := range streams {
		known[s.Name] = true
	}
	for _, e := range catalog.Streams {
		if !known[e.TapStreamID] {
			logger.Warn("skipping unknown catalog stream", slog.String("stream", e.TapStreamID))
		}
	}

	var out []selection
	for _, s := range streams {
		entry, ok := catalog.Lookup(s.Name)
		if !ok || !entry.IsSelected() {
			logger.Debug("stream not selected", slog.String("stream", s.Name))
			continue
		}
		out = append(out, selection{stream: s, properties: selectedProperties(s, entry)})
	}
	return out, nil
}

// selectedProperties intersects the catalog selection with the stream schema.
// Key properties and the replication key are always kept.
func selectedProperties(s *stream.Stream, entry *singer.CatalogEntry) map[string]bool {
	props := make(map[string]bool, len(s.Schema.Properties))
	if entry.Schema == nil || len(entry.Schema.Properties) == 0 {
		for name := range s.Schema.Properties {
			props[name] = true
		}
	} else {
		for name := range entry.SelectedProperties() {
			if _, ok := s.Schema.Properties[name]; ok {
				props[name] = true
			}
		}
	}
	for _, k := range s.KeyProperties {
		props[k] = true
	}
	if s.ReplicationKey != "" {
		props[s.ReplicationKey] = true
	}
	return props
}

func (t *Tap) runStream(ctx context.Context, logger *slog.Logger, sel selection, end time.Time) error {
	name := sel.stream.Name
	start := time.Now()
	err := t.syncStream(ctx, logger.With(slog.String("stream", name)), sel, end)
	streamSyncDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		streamSyncTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("stream %s: %w", name, err)
	}
	streamSyncTotal.WithLabelValues(name, "success").Inc()
	return nil
}
