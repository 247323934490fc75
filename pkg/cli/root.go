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
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/tap-channeldock/tap-channeldock/pkg/logging"
	"github.com/tap-channeldock/tap-channeldock/pkg/tap"
)

const (
	name           = tap.Name
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                      name,
		Usage:                     tap.Description,
		Version:                   version,
		HideHelpCommand:           true,
		DisableSliceFlagSeparator: true,
		Writer:                    stdout,
		ErrWriter:                 stderr,
		Description: fmt.Sprintf(`Extracts Channeldock seller data as Singer messages.

Version: %s
Commit:  %s
Built:   %s

Streams: products (incremental on stocking_date), suppliers (full table).`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "config",
				Usage: "Config file path or URL; ENV merges TAP_CHANNELDOCK_* variables and .env (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "discover",
				Usage: "Write the catalog of available streams to stdout",
			},
			&cli.BoolFlag{
				Name:  "about",
				Usage: "Write tap metadata to stdout",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: aboutFormatText,
				Usage: fmt.Sprintf("Output format for --about (supported values: %s)", supportedAboutFormats()),
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Catalog file path or URL selecting streams and properties",
			},
			&cli.StringFlag{
				Name:  "state",
				Usage: "State file path or URL with bookmarks from a previous run",
			},
			&cli.StringFlag{
				Name:  "test",
				Usage: fmt.Sprintf("Test mode (supported values: %s, %s)", tap.TestModeAll, tap.TestModeSchema),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "metrics-addr",
				Usage:   "Address to serve /metrics and /healthz on during sync (e.g. :9090)",
				Sources: cli.EnvVars("TAP_CHANNELDOCK_METRICS_ADDR"),
			},
		},
		Before: initLogger,
		Action: run,
	}
}

// initLogger configures slog after flags are parsed so --log-level applies
// before any work starts.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}
