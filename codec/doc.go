// Copyright 2025 The Rivaas Authors
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

// Package codec encodes and decodes values for a media type.
//
// Codecs are registered against media types or media ranges. [Lookup]
// resolves a requested media type to a codec: a registration with the same
// essence wins, otherwise the most specific compatible registration is
// used, so "application/vnd.acme+json" is served by the codec registered
// for "application/*+json".
//
// The default registry provides JSON, YAML, TOML and MessagePack:
//
//	c, err := codec.Lookup(mediatype.ApplicationYAML)
//	data, err := c.Encode(map[string]any{"key": "value"})
package codec
