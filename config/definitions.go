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
	"errors"
	"fmt"
	"slices"
	"strings"

	"rivaas.dev/mediatype"
)

// Definitions is the decoded content of one or more definition sources.
type Definitions struct {
	// Default is the media type used for unknown extensions.
	Default string `config:"default"`
	// Types maps media type names to their definitions.
	Types map[string]Definition `config:"types"`
}

// Definition describes a single media type.
type Definition struct {
	Description string   `config:"description"`
	Extensions  []string `config:"extensions"`
	// Preferred places the extensions before existing mappings so they win
	// reverse lookups.
	Preferred bool `config:"preferred"`
}

// Names returns the defined media type names in sorted order.
func (d *Definitions) Names() []string {
	names := make([]string, 0, len(d.Types))
	for name := range d.Types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate reports every invalid definition. Names must not be empty,
// wildcard types must not declare extensions, and the default must be a
// concrete media type.
func (d *Definitions) Validate() error {
	var errs []error

	if d.Default != "" && !mediatype.Parse(d.Default).IsConcrete() {
		errs = append(errs, NewFieldError("definitions", "default", "validate",
			fmt.Errorf("%w: default %q is not concrete", ErrInvalidDefinition, d.Default)))
	}

	for _, name := range d.Names() {
		def := d.Types[name]
		if strings.TrimSpace(name) == "" {
			errs = append(errs, NewFieldError("definitions", "types", "validate",
				fmt.Errorf("%w: empty media type name", ErrInvalidDefinition)))
			continue
		}
		if len(def.Extensions) > 0 && !mediatype.Parse(name).IsConcrete() {
			errs = append(errs, NewFieldError("definitions", "types."+name, "validate",
				fmt.Errorf("%w: range %q cannot have extensions", ErrInvalidDefinition, name)))
		}
	}

	return errors.Join(errs...)
}

// Apply validates the definitions, registers every type in reg in name
// order and maps its extensions in exts. A nil reg uses
// [mediatype.Default]; a nil exts skips extension mapping.
// It returns the registered media types.
func (d *Definitions) Apply(reg *mediatype.Registry, exts *mediatype.ExtensionMap) ([]*mediatype.MediaType, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = mediatype.Default()
	}

	registered := make([]*mediatype.MediaType, 0, len(d.Types))
	for _, name := range d.Names() {
		def := d.Types[name]
		mt := reg.Register(name, def.Description)
		registered = append(registered, mt)

		if exts == nil {
			continue
		}
		for _, ext := range def.Extensions {
			exts.Add(ext, mt, def.Preferred)
		}
	}

	if d.Default != "" && exts != nil {
		exts.SetDefaultMediaType(reg.ValueOf(d.Default))
	}

	return registered, nil
}
