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

// Wildcard is the token matching any main type or subtype.
const Wildcard = "*"

// defaultDescription is given to media types that were parsed rather than registered.
const defaultDescription = "Media type or range of media types"

// Parse parses s into a new, unregistered media type.
//
// Parse never fails. Malformed input is accepted best-effort:
//   - a missing "/" yields subtype "*" ("text" parses as "text/*")
//   - empty main or sub types become "*" ("" parses as "*/*")
//   - surrounding whitespace around tokens and parameters is dropped
//   - parameter pieces without a name are skipped
//
// Main and sub types are lower-cased. Parse never consults a [Registry];
// use [Registry.ValueOf] to get canonical instances.
func Parse(s string) *MediaType {
	return parse(s, defaultDescription)
}

func parse(s, description string) *MediaType {
	head, tail := s, ""
	if i := strings.IndexByte(s, ';'); i >= 0 {
		head, tail = s[:i], s[i+1:]
	}

	var main, sub string
	if i := strings.IndexByte(head, '/'); i >= 0 {
		main = normalizeToken(head[:i])
		sub = normalizeToken(head[i+1:])
	} else {
		main = normalizeToken(head)
		sub = Wildcard
	}

	return newMediaType(main, sub, parseParameters(tail), description)
}

// normalizeToken trims and lower-cases a type token; empty tokens become "*".
func normalizeToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return Wildcard
	}
	return strings.ToLower(token)
}

// parseParameters splits a ";"-separated parameter tail.
// Separators inside quoted values are ignored.
func parseParameters(tail string) Parameters {
	if strings.TrimSpace(tail) == "" {
		return nil
	}

	var params Parameters
	start := 0
	inQuotes := false
	for i := 0; i <= len(tail); i++ {
		if i < len(tail) {
			switch tail[i] {
			case '"':
				inQuotes = !inQuotes
				continue
			case '\\':
				if inQuotes && i+1 < len(tail) {
					i++
				}
				continue
			case ';':
				if inQuotes {
					continue
				}
			default:
				continue
			}
		}
		if p, ok := parseParameter(tail[start:i]); ok {
			params = append(params, p)
		}
		start = i + 1
	}
	return params
}

// parseParameter parses a single "name=value" piece.
func parseParameter(piece string) (Parameter, bool) {
	piece = strings.TrimSpace(piece)
	if piece == "" {
		return Parameter{}, false
	}

	name, value, found := strings.Cut(piece, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Parameter{}, false
	}
	if !found {
		return Parameter{Name: name}, true
	}
	return Parameter{Name: name, Value: unquote(strings.TrimSpace(value))}, true
}

// unquote removes surrounding double quotes and backslash escapes.
// Unterminated quotes are left untouched.
func unquote(v string) string {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return v
	}
	v = v[1 : len(v)-1]
	if !strings.ContainsRune(v, '\\') {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) {
			i++
		}
		b.WriteByte(v[i])
	}
	return b.String()
}
