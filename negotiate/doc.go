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

// Package negotiate selects a representation from an HTTP Accept header.
//
// It is built on the relations of rivaas.dev/mediatype: Accept ranges are
// parsed into [Preference] values, ordered by specificity, and each offer
// takes the quality of the most specific range that includes it.
//
// Basic usage:
//
//	n := negotiate.MustNew()
//	mt, err := n.Negotiate(ctx, "text/html;q=0.8, application/json",
//	    mediatype.TextHTML, mediatype.ApplicationJSON)
//	// mt == mediatype.ApplicationJSON
//
// Offers may also be given as short names resolved through an
// [mediatype.ExtensionMap]:
//
//	n.Accepts("text/*", "json", "html") // "html"
//
// A [Negotiator] caches parsed Accept headers in an LRU cache and reports
// outcomes through OpenTelemetry counters. Configure it with [WithCacheSize]
// and [WithMeterProvider].
package negotiate
