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

package mediatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	exts := DefaultExtensions()

	tests := []struct {
		ext      string
		expected *MediaType
	}{
		{"json", ApplicationJSON},
		{".JSON", ApplicationJSON},
		{"html", TextHTML},
		{"htm", TextHTML},
		{"xml", ApplicationXML},
		{"yml", ApplicationYAML},
		{"toml", ApplicationTOML},
		{"msgpack", ApplicationMsgPack},
		{"mpk", ApplicationMsgPack},
		{"jpeg", ImageJPEG},
	}
	for _, tt := range tests {
		mt, ok := exts.MediaType(tt.ext)
		require.True(t, ok, tt.ext)
		assert.Same(t, tt.expected, mt, tt.ext)
	}

	_, ok := exts.MediaType("unknown-ext")
	assert.False(t, ok)
	_, ok = exts.MediaType("")
	assert.False(t, ok)
}

func TestExtensionMap_PreferredReverseLookup(t *testing.T) {
	t.Parallel()

	exts := DefaultExtensions()

	tests := []struct {
		mt       *MediaType
		expected string
	}{
		{TextHTML, "html"},
		{TextPlain, "txt"},
		{ImageJPEG, "jpg"},
		{ApplicationJSON, "json"},
		{Parse("text/html;charset=utf-8"), "html"},
	}
	for _, tt := range tests {
		ext, ok := exts.Extension(tt.mt)
		require.True(t, ok, tt.mt.Name())
		assert.Equal(t, tt.expected, ext, tt.mt.Name())
	}

	_, ok := exts.Extension(nil)
	assert.False(t, ok)
	_, ok = exts.Extension(Parse("application/x-nothing"))
	assert.False(t, ok)
}

func TestExtensionMap_Add(t *testing.T) {
	t.Parallel()

	exts := NewExtensionMap()
	acme := Parse("application/vnd.acme+json")

	exts.Add("acme", acme, false)
	exts.Add("acm", acme, false)
	ext, ok := exts.Extension(acme)
	require.True(t, ok)
	assert.Equal(t, "acme", ext)

	exts.Add(".ACX", acme, true)
	ext, _ = exts.Extension(acme)
	assert.Equal(t, "acx", ext)

	exts.Add("", acme, false)
	exts.Add("nil", nil, false)
	assert.Len(t, exts.Mappings(), 3)
}

func TestExtensionMap_ForPath(t *testing.T) {
	t.Parallel()

	exts := DefaultExtensions()
	assert.Same(t, ApplicationPDF, exts.ForPath("/tmp/report.PDF"))
	assert.Same(t, ApplicationOctetStream, exts.ForPath("/tmp/report"))
	assert.Same(t, ApplicationOctetStream, exts.ForPath("archive.unknown"))

	exts.SetDefaultMediaType(TextPlain)
	assert.Same(t, TextPlain, exts.ForPath("README"))

	exts.SetDefaultMediaType(nil)
	assert.Same(t, ApplicationOctetStream, exts.DefaultMediaType())
}

func TestExtensionMap_Clear(t *testing.T) {
	t.Parallel()

	exts := DefaultExtensions()
	exts.SetDefaultMediaType(TextPlain)
	exts.Clear()

	assert.Empty(t, exts.Mappings())
	assert.Same(t, TextPlain, exts.DefaultMediaType())
}
