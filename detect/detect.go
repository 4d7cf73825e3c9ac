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

// Package detect determines the media type of content by sniffing its
// leading bytes.
//
// Sniffing is done by github.com/gabriel-vasile/mimetype. Results are
// resolved through a [mediatype.Registry], so well-known types come back as
// their shared instances:
//
//	d := detect.New()
//	d.Detect(pngBytes) == mediatype.ImagePNG // true
//
// [Detector.DetectFile] consults the file extension when sniffing is
// inconclusive.
package detect

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"rivaas.dev/mediatype"
)

// Detector sniffs media types.
//
// Thread-safety: a Detector is safe for concurrent use.
type Detector struct {
	registry   *mediatype.Registry
	extensions *mediatype.ExtensionMap
	logger     *slog.Logger
}

// Option configures a [Detector].
type Option func(*Detector)

// WithRegistry sets the registry detected names are resolved against.
// Defaults to [mediatype.Default].
func WithRegistry(reg *mediatype.Registry) Option {
	return func(d *Detector) {
		if reg != nil {
			d.registry = reg
		}
	}
}

// WithExtensions sets the extension map used by [Detector.DetectFile].
// Defaults to [mediatype.DefaultExtensions].
func WithExtensions(exts *mediatype.ExtensionMap) Option {
	return func(d *Detector) {
		if exts != nil {
			d.extensions = exts
		}
	}
}

// WithLogger sets the logger for detection debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		if logger == nil {
			logger = mediatype.NoopLogger()
		}
		d.logger = logger
	}
}

// New creates a [Detector].
func New(opts ...Option) *Detector {
	d := &Detector{
		registry:   mediatype.Default(),
		extensions: mediatype.DefaultExtensions(),
		logger:     mediatype.NoopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the media type of data. Text content carries its charset
// parameter, e.g. "text/plain;charset=utf-8". Unrecognized binary content
// is [mediatype.ApplicationOctetStream].
func (d *Detector) Detect(data []byte) *mediatype.MediaType {
	return d.resolve(mimetype.Detect(data))
}

// DetectReader reads the leading bytes of r and returns their media type.
func (d *Detector) DetectReader(r io.Reader) (*mediatype.MediaType, error) {
	m, err := mimetype.DetectReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to detect media type: %w", err)
	}
	return d.resolve(m), nil
}

// DetectFile returns the media type of the file at path.
//
// The extension map is consulted when sniffing yields
// "application/octet-stream", and to refine "text/plain" for text formats
// that have no signature, such as YAML or TOML.
func (d *Detector) DetectFile(path string) (*mediatype.MediaType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sniffed, err := d.DetectReader(f)
	if err != nil {
		return nil, err
	}

	switch {
	case sniffed.EqualIgnoreParameters(mediatype.ApplicationOctetStream):
		byExt := d.extensions.ForPath(path)
		d.logger.Debug("sniffing inconclusive, using extension", "path", path, "type", byExt.Name())
		return byExt, nil
	case sniffed.EqualIgnoreParameters(mediatype.TextPlain):
		byExt := d.extensions.ForPath(path)
		if !byExt.EqualIgnoreParameters(sniffed) && !byExt.EqualIgnoreParameters(d.extensions.DefaultMediaType()) {
			d.logger.Debug("refined text content by extension", "path", path, "type", byExt.Name())
			return byExt, nil
		}
	}
	return sniffed, nil
}

// resolve maps a sniffed MIME onto a registered media type when possible.
func (d *Detector) resolve(m *mimetype.MIME) *mediatype.MediaType {
	return d.registry.ValueOf(m.String())
}
