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
	"cmp"
	"slices"
	"strings"
)

// MostSpecific returns the most specific of the given media types.
//
// The candidates are scanned from the second-to-last down to the first,
// starting with the last one as the winner. A scanned candidate:
//   - is skipped when its main type is "*"
//   - replaces the winner when the winner's main type is "*"
//   - replaces the winner when the winner's subtype contains "*"
//
// The scan only ever compares against the current winner, so the result
// depends on order for equally specific candidates: among concrete types
// the last one wins. Nil candidates are ignored.
//
// It returns [ErrNoCandidates] when no non-nil candidate is given.
func MostSpecific(candidates ...*MediaType) (*MediaType, error) {
	last := len(candidates) - 1
	for last >= 0 && candidates[last] == nil {
		last--
	}
	if last < 0 {
		return nil, ErrNoCandidates
	}

	winner := candidates[last]
	for i := last - 1; i >= 0; i-- {
		mt := candidates[i]
		if mt == nil || mt.mainType == Wildcard {
			continue
		}
		if winner.mainType == Wildcard || strings.Contains(winner.subType, Wildcard) {
			winner = mt
		}
	}
	return winner, nil
}

// SortBySpecificity sorts types in place, most specific first, using
// [CompareSpecificity]. Equal elements keep their relative order.
func SortBySpecificity(types []*MediaType) {
	slices.SortStableFunc(types, CompareSpecificity)
}

// CompareSpecificity orders media types from most to least specific. It
// returns a negative number when a is more specific than b, a positive
// number when b is more specific, and zero otherwise. Types of equal
// [MediaType.Specificity] are ordered by parameter count, more first.
func CompareSpecificity(a, b *MediaType) int {
	if c := cmp.Compare(b.Specificity(), a.Specificity()); c != 0 {
		return c
	}
	return cmp.Compare(paramCount(b), paramCount(a))
}

func paramCount(m *MediaType) int {
	if m == nil {
		return 0
	}
	return len(m.params)
}
