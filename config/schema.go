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
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// DefinitionsSchema is the JSON Schema merged definition sources must satisfy.
//
//go:embed definitions.schema.json
var DefinitionsSchema []byte

const schemaName = "definitions.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(DefinitionsSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(schemaName, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaName)
})

// validateSchema checks merged source values against [DefinitionsSchema].
func validateSchema(values map[string]any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile definitions schema: %w", err)
	}
	if err = schema.Validate(values); err != nil {
		return NewError("json-schema", "validate", err)
	}
	return nil
}
