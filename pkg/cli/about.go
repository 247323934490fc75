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
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tap-channeldock/tap-channeldock/pkg/serializer"
	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
	"github.com/tap-channeldock/tap-channeldock/pkg/tap"
)

const (
	aboutFormatText     = "text"
	aboutFormatMarkdown = "markdown"
)

func supportedAboutFormats() []string {
	return append([]string{aboutFormatText, aboutFormatMarkdown}, serializer.SupportedFormats()...)
}

// parseAboutFormat validates --format. text is an alias for table.
func parseAboutFormat(cmd *cli.Command) (string, error) {
	format := strings.ToLower(strings.TrimSpace(cmd.String("format")))
	switch format {
	case aboutFormatText:
		return string(serializer.FormatTable), nil
	case aboutFormatMarkdown:
		return format, nil
	}
	if serializer.Format(format).IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			format, strings.Join(supportedAboutFormats(), ", "))
	}
	return format, nil
}

func writeAbout(ctx context.Context, w io.Writer, format string, about *tap.About) error {
	if format == aboutFormatMarkdown {
		_, err := io.WriteString(w, renderMarkdown(about))
		return err
	}
	if err := serializer.NewWriter(serializer.Format(format), w).Serialize(ctx, about); err != nil {
		return fmt.Errorf("failed to write about: %w", err)
	}
	return nil
}

func renderMarkdown(about *tap.About) string {
	title := cases.Title(language.English)
	heading := func(s string) string {
		return "## " + title.String(s) + "\n\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", about.Name, about.Description)
	fmt.Fprintf(&b, "Version: %s\n\n", about.Version)

	b.WriteString(heading("capabilities"))
	for _, c := range about.Capabilities {
		fmt.Fprintf(&b, "- `%s`\n", c)
	}
	b.WriteString("\n")

	b.WriteString(heading("settings"))
	b.WriteString("| Setting | Type | Required | Secret | Description |\n")
	b.WriteString("|---------|------|----------|--------|-------------|\n")
	if about.Settings != nil {
		names := make([]string, 0, len(about.Settings.Properties))
		for n := range about.Settings.Properties {
			names = append(names, n)
		}
		slices.Sort(names)
		for _, n := range names {
			prop := about.Settings.Properties[n]
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				n, settingType(prop),
				yesNo(slices.Contains(about.Settings.Required, n)),
				yesNo(prop.Secret),
				prop.Description)
		}
	}
	b.WriteString("\n")

	b.WriteString(heading("supported streams"))
	for _, s := range about.Streams {
		fmt.Fprintf(&b, "- `%s`\n", s)
	}
	return b.String()
}

func settingType(s *singer.Schema) string {
	for _, t := range s.Type {
		if t != singer.TypeNull {
			if s.Format != "" {
				return t + " (" + s.Format + ")"
			}
			return t
		}
	}
	return "any"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
