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

package negotiate

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"rivaas.dev/mediatype"
)

// Preference is a media range from an Accept header with its quality.
type Preference struct {
	// Type is the media range without its "q" parameter.
	Type *mediatype.MediaType
	// Quality is the relative weight in [0, 1]. 0 means "not acceptable".
	Quality float64
}

// ParseAccept parses an Accept header value into preferences in header
// order. Parsing is permissive: empty elements are skipped, a missing
// quality defaults to 1, and an invalid quality is read as a loose float
// clamped to [0, 1] or, failing that, as 1.
//
// Ranges are resolved through reg so that well-known types come back as
// their shared instances. A nil reg uses [mediatype.Default].
func ParseAccept(header string, reg *mediatype.Registry) []Preference {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	if reg == nil {
		reg = mediatype.Default()
	}

	prefs := make([]Preference, 0, 4)
	start := 0
	inQuotes := false
	for i := 0; i <= len(header); i++ {
		if i < len(header) {
			switch header[i] {
			case '"':
				inQuotes = !inQuotes
				continue
			case ',':
				if inQuotes {
					continue
				}
			default:
				continue
			}
		}
		if pref, ok := parseAcceptPart(header[start:i], reg); ok {
			prefs = append(prefs, pref)
		}
		start = i + 1
	}

	return prefs
}

// parseAcceptPart parses a single element between commas.
func parseAcceptPart(part string, reg *mediatype.Registry) (Preference, bool) {
	start, end := trimWhitespace(part)
	if start >= end || part[start] == ';' {
		return Preference{}, false
	}
	part = part[start:end]

	mt := reg.ValueOf(part)
	pref := Preference{Type: mt, Quality: 1}
	if !mt.HasParameters() {
		return pref, true
	}

	rawQuality, ok := mt.Parameter("q")
	if !ok {
		return pref, true
	}
	pref.Quality = quality(rawQuality)

	rest := make([]mediatype.Parameter, 0, mt.Parameters().Len())
	for _, p := range mt.Parameters() {
		if p.Name != "q" {
			rest = append(rest, p)
		}
	}
	if len(rest) == 0 {
		pref.Type = reg.ValueOf(mt.Essence())
	} else {
		pref.Type = mt.WithParameters(rest...)
	}
	return pref, true
}

// quality converts a raw q-value into a weight.
func quality(raw string) float64 {
	if q := parseQuality(raw); q >= 0 {
		return float64(q) / 1000.0
	}
	q, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(q) {
		return 1
	}
	return min(max(q, 0), 1)
}

// parseQuality parses a quality value (q-value) from an Accept header.
// Parses strings like "1", "1.0", "0.9", "0.85" into integer thousandths (1000, 1000, 900, 850).
// Returns -1 on parse error.
//
// Quality values in HTTP are defined as:
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
func parseQuality(s string) int {
	if len(s) == 0 || len(s) > 5 { // Max valid: "1.000" or "0.999"
		return -1
	}

	if s[0] == '1' {
		if len(s) == 1 {
			return 1000
		}
		if len(s) < 3 || s[1] != '.' {
			return -1
		}
		for i := 2; i < len(s); i++ {
			if s[i] != '0' {
				return -1
			}
		}
		return 1000
	}

	if s[0] == '0' {
		if len(s) == 1 {
			return 0
		}
		if len(s) < 3 || s[1] != '.' {
			return -1
		}

		result := 0
		multiplier := 100
		for i := 2; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return -1
			}
			result += int(s[i]-'0') * multiplier
			multiplier /= 10
		}
		return result
	}

	return -1
}

// trimWhitespace returns start and end indices of non-whitespace content.
func trimWhitespace(s string) (start, end int) {
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end = len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return start, end
}
