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
	"log/slog"

	"github.com/tap-channeldock/tap-channeldock/pkg/server"
)

// startMetricsServer serves metrics on addr until the returned stop function
// is called or ctx is canceled.
func startMetricsServer(ctx context.Context, addr string) (func(), error) {
	srv := server.New(server.WithAddress(addr), server.WithVersion(version))
	if err := srv.Listen(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Start(ctx); err != nil {
			slog.Warn("metrics server stopped", "error", err)
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}
