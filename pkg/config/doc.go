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

// Package config loads and validates the tap configuration.
//
// Configuration is a JSON (or YAML) object. Several --config values may be
// given; later documents override earlier keys. The literal value "ENV" turns
// on environment merging: a .env file in the working directory is loaded
// first, then every TAP_CHANNELDOCK_<SETTING> variable overrides the setting
// of the same name.
//
//	cfg, err := config.Load(ctx, []string{"config.json", "ENV"})
//	if err != nil {
//	    return err
//	}
package config
