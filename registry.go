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

package mediatype

import (
	"io"
	"log/slog"
	"sort"
	"sync"
)

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NoopLogger returns the singleton no-op logger.
func NoopLogger() *slog.Logger {
	return noopLogger
}

// Registry interns media types by name so that callers share canonical
// instances and can compare them by identity.
//
// A Registry is owned by its caller: tests and applications create
// isolated registries with [NewRegistry] and restore them with
// [Registry.Reset]. [Default] returns a process-wide registry for code that
// does not need isolation.
//
// Thread-safety: all methods are safe for concurrent use. [Registry.Register]
// holds the write lock across the lookup and the insertion, so concurrent
// registrations of the same name always yield one instance.
type Registry struct {
	mu        sync.RWMutex
	types     map[string]*MediaType
	wellKnown bool
	logger    *slog.Logger
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithoutWellKnown creates the registry empty instead of preloading the
// well-known media types.
func WithoutWellKnown() RegistryOption {
	return func(r *Registry) { r.wellKnown = false }
}

// WithLogger sets the logger used for debug output on registration.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger == nil {
			logger = noopLogger
		}
		r.logger = logger
	}
}

// NewRegistry creates a registry preloaded with the well-known media types
// such as [All], [ApplicationJSON] and [TextPlain].
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		wellKnown: true,
		logger:    noopLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.types = r.initialTypes()
	return r
}

// initialTypes builds the registry contents at construction time.
func (r *Registry) initialTypes() map[string]*MediaType {
	if !r.wellKnown {
		return make(map[string]*MediaType)
	}
	types := make(map[string]*MediaType, len(wellKnown)*2)
	for _, mt := range wellKnown {
		types[mt.name] = mt
	}
	return types
}

// Register returns the media type registered under name, creating and
// storing it first if needed. Registration is idempotent: the first
// description given for a name is kept and later calls return the same
// instance.
func (r *Registry) Register(name, description string) *MediaType {
	r.mu.Lock()
	defer r.mu.Unlock()

	if mt, ok := r.types[name]; ok {
		return mt
	}
	mt := parse(name, description)
	r.types[name] = mt
	r.logger.Debug("registered media type", "name", name, "canonical", mt.name)
	return mt
}

// Lookup returns the media type registered under exactly name.
func (r *Registry) Lookup(name string) (*MediaType, bool) {
	r.mu.RLock()
	mt, ok := r.types[name]
	r.mu.RUnlock()
	return mt, ok
}

// ValueOf returns the registered media type for name or, when none is
// registered, a new unregistered instance parsed from name. It returns nil
// for an empty name and never modifies the registry.
//
// The name is looked up as given first, then in its canonical form, so
// "TEXT/HTML" resolves to the registered "text/html" instance.
func (r *Registry) ValueOf(name string) *MediaType {
	if name == "" {
		return nil
	}
	if mt, ok := r.Lookup(name); ok {
		return mt
	}
	parsed := Parse(name)
	if parsed.name != name {
		if mt, ok := r.Lookup(parsed.name); ok {
			return mt
		}
	}
	return parsed
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Types returns the registered media types sorted by name.
func (r *Registry) Types() []*MediaType {
	r.mu.RLock()
	out := make([]*MediaType, 0, len(r.types))
	for _, mt := range r.types {
		out = append(out, mt)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Reset discards every registration made since construction.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.types = r.initialTypes()
	r.mu.Unlock()
	r.logger.Debug("registry reset")
}

var defaultRegistry *Registry

// init builds the default registry once the well-known variables are set.
func init() {
	defaultRegistry = NewRegistry()
}

// Default returns the process-wide registry used by [Register] and [ValueOf].
func Default() *Registry {
	return defaultRegistry
}

// Register registers name in the [Default] registry.
func Register(name, description string) *MediaType {
	return defaultRegistry.Register(name, description)
}

// ValueOf resolves name against the [Default] registry.
func ValueOf(name string) *MediaType {
	return defaultRegistry.ValueOf(name)
}
