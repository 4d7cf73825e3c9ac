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

import "strings"

// Specificity levels returned by [MediaType.Specificity].
const (
	// SpecificityAll is the rank of "*/*" and any range with a wildcard main type.
	SpecificityAll = iota
	// SpecificityMainType is the rank of "main/*" ranges.
	SpecificityMainType
	// SpecificitySuffix is the rank of structured-syntax suffix ranges such as "application/*+xml".
	SpecificitySuffix
	// SpecificityConcrete is the rank of media types without wildcards.
	SpecificityConcrete
)

// MediaType is an immutable media type or media range, such as "text/html",
// "text/*" or "application/atom+xml;type=entry".
//
// Instances are created by [Parse], [Registry.Register] and [Registry.ValueOf].
// All methods are safe for concurrent use. Methods deriving a variant
// ([MediaType.WithParameters], [MediaType.WithoutParameters]) return new values.
type MediaType struct {
	name        string
	essence     string
	mainType    string
	subType     string
	params      Parameters
	description string
}

func newMediaType(mainType, subType string, params Parameters, description string) *MediaType {
	essence := mainType + "/" + subType
	return &MediaType{
		name:        essence + params.String(),
		essence:     essence,
		mainType:    mainType,
		subType:     subType,
		params:      params,
		description: description,
	}
}

// Name returns the canonical name including parameters, e.g. "text/html;charset=utf-8".
func (m *MediaType) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// String implements [fmt.Stringer]. It returns [MediaType.Name].
func (m *MediaType) String() string {
	return m.Name()
}

// MarshalText implements [encoding.TextMarshaler].
func (m *MediaType) MarshalText() ([]byte, error) {
	return []byte(m.Name()), nil
}

// Essence returns "main/sub" without parameters.
func (m *MediaType) Essence() string {
	if m == nil {
		return ""
	}
	return m.essence
}

// MainType returns the part before the "/", e.g. "text".
func (m *MediaType) MainType() string {
	if m == nil {
		return ""
	}
	return m.mainType
}

// SubType returns the part after the "/" and before any parameter, e.g. "html".
// It is "*" when the parsed name had no "/".
func (m *MediaType) SubType() string {
	if m == nil {
		return ""
	}
	return m.subType
}

// Parameters returns a copy of the parameters in their original order.
func (m *MediaType) Parameters() Parameters {
	if m == nil {
		return nil
	}
	return m.params.clone()
}

// Parameter returns the value of the named parameter.
func (m *MediaType) Parameter(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	return m.params.Get(name)
}

// HasParameters reports whether the media type carries any parameter.
func (m *MediaType) HasParameters() bool {
	return m != nil && len(m.params) > 0
}

// Description returns the human readable description.
func (m *MediaType) Description() string {
	if m == nil {
		return ""
	}
	return m.description
}

// Equal reports whether m and other have the same essence and the same
// parameters, compared as unordered multisets.
func (m *MediaType) Equal(other *MediaType) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	return m.essence == other.essence && m.params.Equal(other.params)
}

// EqualIgnoreParameters reports whether m and other have the same essence.
func (m *MediaType) EqualIgnoreParameters(other *MediaType) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	return m.essence == other.essence
}

// IsConcrete reports whether neither the main type nor the subtype carries
// a wildcard. "text/plain" is concrete; "text/*", "*/*" and
// "application/*+xml" are not.
func (m *MediaType) IsConcrete() bool {
	if m == nil {
		return false
	}
	return !strings.Contains(m.mainType, Wildcard) && !strings.Contains(m.subType, Wildcard)
}

// Specificity ranks m from [SpecificityAll] to [SpecificityConcrete].
func (m *MediaType) Specificity() int {
	switch {
	case m == nil || m.mainType == Wildcard:
		return SpecificityAll
	case m.subType == Wildcard:
		return SpecificityMainType
	case strings.Contains(m.subType, Wildcard):
		return SpecificitySuffix
	default:
		return SpecificityConcrete
	}
}

// isAll reports whether m is "*/*", ignoring parameters.
func (m *MediaType) isAll() bool {
	return m.mainType == Wildcard && m.subType == Wildcard
}

// Includes reports whether candidate falls within the range m describes.
// Parameters are ignored.
//
// The relation is asymmetric: "text/*" includes "text/plain" but
// "text/plain" does not include "text/*". A nil candidate is included by
// every range. The rules are, in order:
//   - "*/*" includes everything
//   - equal essences include each other
//   - otherwise main types must be equal, and either the subtype of m is
//     "*", or it is "*+suffix" and the candidate subtype ends with "suffix"
//
// The suffix test does not require the "+": "application/*+xml" includes
// "application/xml" and also "application/soapxml".
func (m *MediaType) Includes(candidate *MediaType) bool {
	if m == nil {
		return false
	}
	if candidate == nil || m.isAll() || m.essence == candidate.essence {
		return true
	}
	return m.includesSubType(candidate)
}

// IncludesParameters is like [MediaType.Includes] but also honors
// parameters: when both subtypes are equal, every parameter of m must be
// present in candidate with the same value.
func (m *MediaType) IncludesParameters(candidate *MediaType) bool {
	if m == nil {
		return false
	}
	if candidate == nil || m.Equal(candidate) {
		return true
	}
	if m.isAll() && len(m.params) == 0 {
		return true
	}
	if m.mainType == candidate.mainType && m.subType == candidate.subType {
		for _, p := range m.params {
			v, ok := candidate.params.Get(p.Name)
			if !ok || v != p.Value {
				return false
			}
		}
		return true
	}
	return m.includesSubType(candidate)
}

// includesSubType applies the wildcard subtype rules for equal main types.
func (m *MediaType) includesSubType(candidate *MediaType) bool {
	if m.mainType != candidate.mainType {
		return false
	}
	switch {
	case m.subType == candidate.subType:
		return true
	case m.subType == Wildcard:
		return true
	case strings.HasPrefix(m.subType, "*+"):
		return strings.HasSuffix(candidate.subType, m.subType[2:])
	default:
		return false
	}
}

// IsCompatible reports whether either media type includes the other.
// Unlike [MediaType.Includes] it is symmetric.
func (m *MediaType) IsCompatible(other *MediaType) bool {
	return m.Includes(other) || other.Includes(m)
}

// Parent returns the next broader media type: the essence when m has
// parameters, "main/*" for a concrete subtype, "*/*" for "main/*", and nil
// for "*/*" itself.
func (m *MediaType) Parent() *MediaType {
	if m == nil {
		return nil
	}
	if len(m.params) > 0 {
		return canonical(m.essence)
	}
	if m.subType == Wildcard {
		if m.mainType == Wildcard {
			return nil
		}
		return All
	}
	return canonical(m.mainType + "/*")
}

// WithParameters returns a new media type with the same essence and the
// given parameters replacing the existing ones.
func (m *MediaType) WithParameters(params ...Parameter) *MediaType {
	if m == nil {
		return nil
	}
	return newMediaType(m.mainType, m.subType, Parameters(params).normalized(), defaultDescription)
}

// WithoutParameters returns the media type stripped of its parameters.
// Well-known types are returned as their shared instance.
func (m *MediaType) WithoutParameters() *MediaType {
	if m == nil || len(m.params) == 0 {
		return m
	}
	return canonical(m.essence)
}
