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

//go:build !integration

package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/mediatype"
)

const baseYAML = `
default: application/octet-stream
types:
  application/vnd.acme+json:
    description: Acme document
    extensions: [acme, acm]
    preferred: true
  Text/X-Notes:
    description: Notes
    extensions: notes,nts
`

const overrideTOML = `
default = "text/plain"

[types."application/vnd.acme+json"]
description = "Acme document v2"

[types."image/x-sketch"]
extensions = ["sketch"]
`

type failingSource struct{ err error }

func (f failingSource) Load(context.Context) (map[string]any, error) { return nil, f.err }

type nilSource struct{}

func (nilSource) Load(context.Context) (map[string]any, error) { return nil, nil }

func TestLoad(t *testing.T) {
	t.Parallel()

	defs, err := Load(context.Background(),
		NewFileContent([]byte(baseYAML), mediatype.ApplicationYAML),
		NewFileContent([]byte(overrideTOML), mediatype.ApplicationTOML),
		nilSource{},
	)
	require.NoError(t, err)

	assert.Equal(t, "text/plain", defs.Default)
	assert.Equal(t, []string{"application/vnd.acme+json", "image/x-sketch", "text/x-notes"}, defs.Names())

	acme := defs.Types["application/vnd.acme+json"]
	assert.Equal(t, "Acme document v2", acme.Description)
	assert.Equal(t, []string{"acme", "acm"}, acme.Extensions)
	assert.True(t, acme.Preferred)

	notes := defs.Types["text/x-notes"]
	assert.Equal(t, []string{"notes", "nts"}, notes.Extensions)
	assert.False(t, notes.Preferred)

	assert.Equal(t, []string{"sketch"}, defs.Types["image/x-sketch"].Extensions)
}

func TestLoad_NoSources(t *testing.T) {
	t.Parallel()

	defs, err := Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, defs.Types)
	assert.Empty(t, defs.Default)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is the case under test
	_, err := Load(nil)
	require.ErrorIs(t, err, ErrNilContext)

	boom := errors.New("boom")
	_, err = Load(context.Background(), nilSource{}, failingSource{err: boom})
	require.ErrorIs(t, err, boom)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "source[1]", cfgErr.Source)
	assert.Equal(t, "load", cfgErr.Operation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, nilSource{})
	require.ErrorIs(t, err, context.Canceled)

	_, err = Load(context.Background(),
		NewFileContent([]byte("types:\n  text/x-a:\n    preferred: maybe\n"), mediatype.ApplicationYAML))
	require.Error(t, err)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "definitions", cfgErr.Source)
	assert.Equal(t, "decode", cfgErr.Operation)
}

func TestLoad_Schema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown top-level key", "aliases: {}\n"},
		{"unknown type key", "types:\n  text/x-a:\n    icon: a.png\n"},
		{"preferred is a list", "types:\n  text/x-a:\n    preferred: [1, 2]\n"},
		{"extensions is a map", "types:\n  text/x-a:\n    extensions: {a: b}\n"},
		{"empty default", "default: \"\"\n"},
		{"types is a list", "types: [text/x-a]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(context.Background(), NewFileContent([]byte(tt.yaml), mediatype.ApplicationYAML))
			require.Error(t, err)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "json-schema", cfgErr.Source)
			assert.Equal(t, "validate", cfgErr.Operation)
		})
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	base := errors.New("underlying")
	assert.Equal(t, "config error in source[0] during load: underlying", NewError("source[0]", "load", base).Error())
	assert.Equal(t, "config error in definitions.default during validate: underlying",
		NewFieldError("definitions", "default", "validate", base).Error())
	assert.ErrorIs(t, NewError("x", "y", base), base)
}
