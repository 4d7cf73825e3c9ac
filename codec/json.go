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
	"encoding/json"

	"rivaas.dev/mediatype"
)

// init registers the JSON codec for JSON documents and the "+json" suffix.
func init() {
	mustRegister(JSONCodec{}, mediatype.ApplicationJSON, mediatype.ApplicationAllJSON)
}

// JSONCodec implements [Codec] for JSON.
// It wraps the standard library's json.Marshal and json.Unmarshal.
type JSONCodec struct{}

// Encode converts the provided value v into a JSON-encoded byte slice.
func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode unmarshals the provided JSON-encoded byte slice into the value pointed to by v.
func (JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
