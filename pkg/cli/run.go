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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tap-channeldock/tap-channeldock/pkg/config"
	"github.com/tap-channeldock/tap-channeldock/pkg/serializer"
	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
	"github.com/tap-channeldock/tap-channeldock/pkg/tap"
)

func run(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer

	if cmd.Bool("about") {
		format, err := parseAboutFormat(cmd)
		if err != nil {
			return err
		}
		return writeAbout(ctx, out, format, tap.NewAbout(version, nil))
	}

	testMode, err := tap.ParseTestMode(cmd.String("test"))
	if err != nil {
		return err
	}

	cfg, err := config.Load(ctx, cmd.StringSlice("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.Debug("config loaded", "config", cfg.Redacted())

	t := tap.New(cfg, version, out)

	if cmd.Bool("discover") {
		if err := serializer.NewWriter(serializer.FormatJSON, out).Serialize(ctx, t.Discover()); err != nil {
			return fmt.Errorf("failed to write catalog: %w", err)
		}
		return nil
	}

	if path := cmd.String("catalog"); path != "" {
		catalog, err := serializer.FromFile[singer.Catalog](ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load catalog from %q: %w", path, err)
		}
		t.Catalog = catalog
	}

	if path := cmd.String("state"); path != "" {
		state, err := loadState(ctx, path)
		if err != nil {
			return err
		}
		t.State = state
	}
	t.TestMode = testMode

	if addr := cmd.String("metrics-addr"); addr != "" {
		stop, err := startMetricsServer(ctx, addr)
		if err != nil {
			return err
		}
		defer stop()
	}

	return t.Sync(ctx)
}

// loadState reads bookmarks from path. A local file that does not exist yet
// is an empty state.
func loadState(ctx context.Context, path string) (*singer.State, error) {
	doc, err := serializer.FromFile[singer.StateDocument](ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("state file not found, starting with empty state", "path", path)
			return singer.NewState(), nil
		}
		return nil, fmt.Errorf("failed to load state from %q: %w", path, err)
	}
	return singer.NewStateFromDocument(doc), nil
}
