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
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/tap-channeldock/tap-channeldock/pkg/config"
	"github.com/tap-channeldock/tap-channeldock/pkg/defaults"
	"github.com/tap-channeldock/tap-channeldock/pkg/stream"
)

func (t *Tap) syncStream(ctx context.Context, logger *slog.Logger, sel selection, end time.Time) error {
	s := sel.stream
	schema := s.Schema.Select(sel.properties)
	if err := t.Output.WriteSchema(s.Name, schema, s.KeyProperties, s.BookmarkProperties()); err != nil {
		return err
	}
	if t.TestMode == TestModeSchema {
		return nil
	}

	window := t.window(logger, s, end)
	dropped := make(map[string]bool)
	emitted := 0

	for page := 1; ; page++ {
		result, err := t.Client.GetPage(ctx, s.Path, s.QueryParams(page, window), s.RecordsKey)
		if err != nil {
			return err
		}
		logger.Debug("fetched page",
			slog.Int("page", page),
			slog.Int("records", len(result.Records)),
			slog.Int("count", result.Count))

		for _, raw := range result.Records {
			rec, ok := s.Process(raw)
			if !ok {
				continue
			}
			if err := t.Output.WriteRecord(s.Name, project(rec, sel.properties, dropped), t.Now()); err != nil {
				return err
			}
			recordsTotal.WithLabelValues(s.Name).Inc()
			emitted++
			if t.TestMode == TestModeAll {
				break
			}
		}

		if t.TestMode == TestModeAll && emitted > 0 {
			break
		}
		if !result.HasNext(defaults.PageSize) {
			break
		}
	}

	if len(dropped) > 0 {
		logger.Info("dropped fields not in schema", slog.Any("fields", slices.Sorted(maps.Keys(dropped))))
	}

	if s.IsIncremental() && t.TestMode == TestModeNone {
		t.State.SetBookmark(s.Name, s.ReplicationKey, config.FormatAPIDate(window.End))
	}
	if err := t.Output.WriteState(t.State.Snapshot()); err != nil {
		return err
	}

	logger.Info("stream synced", slog.Int("records", emitted))
	return nil
}

// window bounds an incremental request: from the bookmark, else the
// configured start date, up to end.
func (t *Tap) window(logger *slog.Logger, s *stream.Stream, end time.Time) stream.Window {
	w := stream.Window{End: end}
	configured, hasStart := t.Config.StartTime()
	if hasStart {
		w.Start = configured
		w.DateFrom = t.Config.StartDay()
	}
	if !s.IsIncremental() {
		return w
	}

	if raw := t.State.BookmarkValue(s.Name); raw != "" {
		bookmark, err := config.ParseDate(raw)
		if err != nil {
			logger.Warn("ignoring unparsable bookmark",
				slog.String("value", raw),
				slog.String("error", err.Error()))
		} else {
			w.Start = bookmark
			logger.Info("resuming from bookmark", slog.String("start_date", config.FormatAPIDate(bookmark)))
		}
	}
	return w
}

// project keeps the selected properties of rec and records the names of
// the rest in dropped.
func project(rec map[string]any, props map[string]bool, dropped map[string]bool) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range rec {
		if props[k] {
			out[k] = v
			continue
		}
		dropped[k] = true
	}
	return out
}
