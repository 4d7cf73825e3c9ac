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
	"strings"
)

// tspecials are the characters that force a parameter value to be quoted.
const tspecials = `()<>@,;:\"/[]?= ` + "\t"

// Parameter is a single media type parameter.
// Names are case-insensitive and stored lower-cased; values are kept as given.
type Parameter struct {
	Name  string
	Value string
}

// String returns the parameter in "name=value" form, quoting the value when needed.
func (p Parameter) String() string {
	if p.Value == "" {
		return p.Name
	}
	return p.Name + "=" + quoteValue(p.Value)
}

// Parameters is an ordered list of media type parameters.
//
// A Parameters value obtained from a [MediaType] is a copy; modifying it
// does not affect the media type.
type Parameters []Parameter

// Len returns the number of parameters.
func (ps Parameters) Len() int {
	return len(ps)
}

// Get returns the value of the first parameter with the given name.
// The name comparison is case-insensitive.
func (ps Parameters) Get(name string) (string, bool) {
	for _, p := range ps {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Value returns the value of the first parameter with the given name, or "".
func (ps Parameters) Value(name string) string {
	v, _ := ps.Get(name)
	return v
}

// Equal reports whether both lists hold the same parameters, regardless of order.
// Duplicates are counted, so the lists are compared as multisets.
func (ps Parameters) Equal(other Parameters) bool {
	if len(ps) != len(other) {
		return false
	}
	if len(ps) == 0 {
		return true
	}

	counts := make(map[Parameter]int, len(ps))
	for _, p := range ps {
		counts[p]++
	}
	for _, p := range other {
		n := counts[p]
		if n == 0 {
			return false
		}
		counts[p] = n - 1
	}
	return true
}

// String renders the parameters as ";name=value" pairs.
func (ps Parameters) String() string {
	if len(ps) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range ps {
		b.WriteByte(';')
		b.WriteString(p.String())
	}
	return b.String()
}

// clone returns a copy of ps, or nil when empty.
func (ps Parameters) clone() Parameters {
	if len(ps) == 0 {
		return nil
	}
	out := make(Parameters, len(ps))
	copy(out, ps)
	return out
}

// normalized returns a copy with trimmed, lower-cased names and empty names dropped.
func (ps Parameters) normalized() Parameters {
	if len(ps) == 0 {
		return nil
	}
	out := make(Parameters, 0, len(ps))
	for _, p := range ps {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			continue
		}
		out = append(out, Parameter{Name: name, Value: p.Value})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// quoteValue quotes v if it contains characters not allowed in an HTTP token.
func quoteValue(v string) string {
	if !strings.ContainsAny(v, tspecials) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
	return b.String()
}
