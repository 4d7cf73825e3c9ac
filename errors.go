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

import "errors"

var (
	// ErrNoCandidates indicates that MostSpecific was called without any candidate.
	ErrNoCandidates = errors.New("mediatype: at least one media type is required")

	// ErrNilMediaType indicates that a nil media type was given where one is required.
	ErrNilMediaType = errors.New("mediatype: nil media type")
)
