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

package codec

import (
	"fmt"
	"sync"

	"rivaas.dev/mediatype"
)

type entry struct {
	mediaType *mediatype.MediaType
	codec     Codec
}

// Registry holds codecs keyed by media type.
//
// Thread-safety: all methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var registry = NewRegistry()

// Default returns the registry used by the package-level functions.
func Default() *Registry {
	return registry
}

// Register associates c with mt. A codec already registered for the same
// essence is replaced. Parameters of mt are ignored.
func (r *Registry) Register(mt *mediatype.MediaType, c Codec) error {
	if mt == nil {
		return fmt.Errorf("register codec: %w", mediatype.ErrNilMediaType)
	}
	if c == nil {
		return fmt.Errorf("register codec for %s: %w", mt, ErrNilCodec)
	}
	mt = mt.WithoutParameters()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.mediaType.EqualIgnoreParameters(mt) {
			r.entries[i].codec = c
			return nil
		}
	}
	r.entries = append(r.entries, entry{mediaType: mt, codec: c})
	return nil
}

// Lookup returns the codec for mt. A registration with the same essence
// wins; otherwise the registered media types compatible with mt are
// reduced with [mediatype.MostSpecific] in registration order.
func (r *Registry) Lookup(mt *mediatype.MediaType) (Codec, error) {
	if mt == nil {
		return nil, fmt.Errorf("lookup codec: %w", mediatype.ErrNilMediaType)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	compatible := make([]*mediatype.MediaType, 0, len(r.entries))
	byType := make(map[*mediatype.MediaType]Codec, len(r.entries))
	for _, e := range r.entries {
		if e.mediaType.EqualIgnoreParameters(mt) {
			return e.codec, nil
		}
		if e.mediaType.IsCompatible(mt) {
			compatible = append(compatible, e.mediaType)
			byType[e.mediaType] = e.codec
		}
	}

	best, err := mediatype.MostSpecific(compatible...)
	if err != nil {
		return nil, fmt.Errorf("%w for media type: %s", ErrCodecNotFound, mt)
	}
	return byType[best], nil
}

// MediaTypes returns the registered media types in registration order.
func (r *Registry) MediaTypes() []*mediatype.MediaType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*mediatype.MediaType, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.mediaType
	}
	return out
}

// Encode encodes v with the codec for mt.
func (r *Registry) Encode(mt *mediatype.MediaType, v any) ([]byte, error) {
	c, err := r.Lookup(mt)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}

// Decode decodes data into v with the codec for mt.
func (r *Registry) Decode(mt *mediatype.MediaType, data []byte, v any) error {
	c, err := r.Lookup(mt)
	if err != nil {
		return err
	}
	return c.Decode(data, v)
}

// Register registers c for mt in the default registry.
func Register(mt *mediatype.MediaType, c Codec) error {
	return registry.Register(mt, c)
}

// Lookup resolves mt against the default registry.
func Lookup(mt *mediatype.MediaType) (Codec, error) {
	return registry.Lookup(mt)
}

// mustRegister registers built-in codecs at init time.
func mustRegister(c Codec, types ...*mediatype.MediaType) {
	for _, mt := range types {
		if err := registry.Register(mt, c); err != nil {
			panic(fmt.Sprintf("codec: %v", err))
		}
	}
}
