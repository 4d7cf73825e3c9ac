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

package config

import (
	"context"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
)

// Load loads every source in order, merges them with later sources
// overriding earlier ones, and decodes the result into [Definitions].
//
// Decoding is weakly typed: quoted booleans such as preferred: "true" and
// comma-separated lists such as extensions: "a,b" are accepted.
//
// The merged values must satisfy [DefinitionsSchema]: unknown keys are
// rejected.
//
// Errors:
//   - Returns [ErrNilContext] if ctx is nil
//   - Returns [Error] if any source fails to load
//   - Returns [Error] if the merged values do not satisfy the schema
//   - Returns [Error] if merging or decoding fails
func Load(ctx context.Context, sources ...Source) (*Definitions, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	values, err := loadSources(ctx, sources)
	if err != nil {
		return nil, err
	}
	if err = validateSchema(values); err != nil {
		return nil, err
	}

	defs := &Definitions{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		Result:           defs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err = decoder.Decode(values); err != nil {
		return nil, NewError("definitions", "decode", err)
	}

	return defs, nil
}

// loadSources loads configuration data from all sources sequentially.
func loadSources(ctx context.Context, sources []Source) (map[string]any, error) {
	values := make(map[string]any)
	for i, src := range sources {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		conf, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}
		if conf == nil {
			continue
		}

		if err = mergo.Map(&values, normalizeMapKeys(conf), mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "merge", err)
		}
	}

	return values, nil
}

// normalizeMapKeys recursively lower-cases and trims map keys so that
// sources merge case-insensitively. Media type names are case-insensitive
// too.
func normalizeMapKeys(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		key := strings.ToLower(strings.TrimSpace(k))
		if nested, ok := v.(map[string]any); ok {
			normalized[key] = normalizeMapKeys(nested)
		} else {
			normalized[key] = v
		}
	}
	return normalized
}
