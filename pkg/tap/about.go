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
	"github.com/tap-channeldock/tap-channeldock/pkg/config"
	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
	"github.com/tap-channeldock/tap-channeldock/pkg/stream"
)

// Description is the one-line summary shown by --about.
const Description = "Singer tap for the Channeldock seller API"

// Capabilities lists what the tap supports.
var Capabilities = []string{"catalog", "state", "discover", "about"}

// About describes the tap for --about.
type About struct {
	Name         string         `json:"name" yaml:"name"`
	Description  string         `json:"description" yaml:"description"`
	Version      string         `json:"version" yaml:"version"`
	Capabilities []string       `json:"capabilities" yaml:"capabilities"`
	Settings     *singer.Schema `json:"settings" yaml:"settings"`
	Streams      []string       `json:"streams" yaml:"streams"`
}

// NewAbout builds the about document. A nil factory uses the default streams.
func NewAbout(version string, f stream.Factory) *About {
	if f == nil {
		f = stream.NewDefaultFactory()
	}
	return &About{
		Name:         Name,
		Description:  Description,
		Version:      version,
		Capabilities: append([]string(nil), Capabilities...),
		Settings:     config.JSONSchema(),
		Streams:      stream.Names(f.Streams()),
	}
}
