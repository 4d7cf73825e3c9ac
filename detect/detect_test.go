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

package detect

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/mediatype"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	binary    = []byte{0x00, 0x01, 0x02, 0x03, 0xfe, 0xff}
)

func TestDetect(t *testing.T) {
	t.Parallel()

	d := New()

	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"png", pngHeader, "image/png"},
		{"pdf", []byte("%PDF-1.7\n"), "application/pdf"},
		{"json", []byte(`{"a": 1}`), "application/json"},
		{"plain text", []byte("hello world"), "text/plain;charset=utf-8"},
		{"binary", binary, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, d.Detect(tt.data).Name())
		})
	}
}

func TestDetect_WellKnownInstances(t *testing.T) {
	t.Parallel()

	d := New()
	assert.Same(t, mediatype.ImagePNG, d.Detect(pngHeader))
	assert.Same(t, mediatype.ApplicationOctetStream, d.Detect(binary))
}

func TestDetect_Registry(t *testing.T) {
	t.Parallel()

	reg := mediatype.NewRegistry()
	custom := reg.Register("text/plain; charset=utf-8", "UTF-8 text")

	d := New(WithRegistry(reg))
	assert.Same(t, custom, d.Detect([]byte("hello")))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestDetectReader(t *testing.T) {
	t.Parallel()

	d := New()
	mt, err := d.DetectReader(bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Same(t, mediatype.ImagePNG, mt)

	_, err = d.DetectReader(errReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to detect media type")
}

func TestDetectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o600))
		return path
	}

	tests := []struct {
		name     string
		file     string
		data     []byte
		expected string
	}{
		{"sniffed wins", "image.dat", pngHeader, "image/png"},
		{"binary falls back to extension", "report.pdf", binary, "application/pdf"},
		{"unknown binary", "blob.unknown", binary, "application/octet-stream"},
		{"yaml refined from text", "types.yaml", []byte("key: value\n"), "application/yaml"},
		{"plain text kept", "notes.txt", []byte("hello"), "text/plain;charset=utf-8"},
		{"text without extension", "README", []byte("hello"), "text/plain;charset=utf-8"},
	}

	d := New()
	for _, tt := range tests {
		path := write(tt.file, tt.data)
		mt, err := d.DetectFile(path)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.expected, mt.Name(), tt.name)
	}

	_, err := d.DetectFile(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDetectFile_CustomExtensions(t *testing.T) {
	t.Parallel()

	acme := mediatype.Parse("application/vnd.acme")
	exts := mediatype.NewExtensionMap()
	exts.Add("acme", acme, false)

	path := filepath.Join(t.TempDir(), "doc.acme")
	require.NoError(t, os.WriteFile(path, binary, 0o600))

	mt, err := New(WithExtensions(exts), WithLogger(nil)).DetectFile(path)
	require.NoError(t, err)
	assert.Same(t, acme, mt)
}
