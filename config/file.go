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
	"os"

	"rivaas.dev/mediatype"
	"rivaas.dev/mediatype/codec"
)

// File is a [Source] that loads definitions from a file or byte content.
type File struct {
	path       string
	data       []byte
	mediaType  *mediatype.MediaType
	extensions *mediatype.ExtensionMap
	codecs     *codec.Registry
}

// FileOption configures a [File].
type FileOption func(*File)

// WithMediaType sets the media type of the content instead of deriving it
// from the file extension.
func WithMediaType(mt *mediatype.MediaType) FileOption {
	return func(f *File) {
		f.mediaType = mt
	}
}

// WithExtensions sets the extension map used to derive the media type from
// the file name. Defaults to [mediatype.DefaultExtensions].
func WithExtensions(exts *mediatype.ExtensionMap) FileOption {
	return func(f *File) {
		if exts != nil {
			f.extensions = exts
		}
	}
}

// WithCodecs sets the codec registry used to decode the content.
// Defaults to [codec.Default].
func WithCodecs(reg *codec.Registry) FileOption {
	return func(f *File) {
		if reg != nil {
			f.codecs = reg
		}
	}
}

// NewFile creates a [File] that reads definitions from path. The decoder is
// chosen from the media type mapped to the file extension, so "types.yaml"
// is decoded as YAML and "types.toml" as TOML.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{
		path:       path,
		extensions: mediatype.DefaultExtensions(),
		codecs:     codec.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFileContent creates a [File] that decodes data as mt.
// This is useful for embedded content.
func NewFileContent(data []byte, mt *mediatype.MediaType, opts ...FileOption) *File {
	f := &File{
		data:       data,
		mediaType:  mt,
		extensions: mediatype.DefaultExtensions(),
		codecs:     codec.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// MediaType returns the media type the content is decoded as.
func (f *File) MediaType() *mediatype.MediaType {
	if f.mediaType != nil {
		return f.mediaType
	}
	return f.extensions.ForPath(f.path)
}

// Load reads the file, when created with [NewFile], and decodes it.
//
// Errors:
//   - Returns error if the file cannot be read
//   - Returns error if no codec handles the media type
//   - Returns error if decoding fails
func (f *File) Load(context.Context) (map[string]any, error) {
	data := f.data
	if f.path != "" {
		var err error
		data, err = os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	mt := f.MediaType()
	decoder, err := f.codecs.Lookup(mt)
	if err != nil {
		return nil, fmt.Errorf("failed to select decoder: %w", err)
	}

	var values map[string]any
	if err = decoder.Decode(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", mt, err)
	}

	return values, nil
}
