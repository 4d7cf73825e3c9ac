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

import "errors"

var (
	// ErrNoOffers indicates that negotiation was attempted without any offer.
	ErrNoOffers = errors.New("no offers to negotiate")

	// ErrNotAcceptable indicates that no offer matches the accepted media ranges.
	ErrNotAcceptable = errors.New("no acceptable media type")

	// ErrCacheSizeNegative indicates that the cache size option is negative.
	ErrCacheSizeNegative = errors.New("cache size must not be negative")
)
