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

// Package config loads media type definitions from files.
//
// A definitions file declares media types, their descriptions and their
// file extensions:
//
//	default: application/octet-stream
//	types:
//	  application/vnd.acme+json:
//	    description: Acme document
//	    extensions: [acme]
//	    preferred: true
//
// YAML, TOML and JSON are supported; the decoder is chosen from the file
// extension through rivaas.dev/mediatype/codec. Several sources can be
// merged, later sources overriding earlier ones:
//
//	defs, err := config.Load(ctx,
//	    config.NewFile("types.yaml"),
//	    config.NewFile("types.local.toml"),
//	)
//	if err != nil {
//	    return err
//	}
//	registered, err := defs.Apply(reg, exts)
//
// The merged sources are checked against [DefinitionsSchema] before they
// are decoded, so misspelled keys fail loudly.
package config
