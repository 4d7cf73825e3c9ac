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

// Package mediatype provides media types and the matching rules used for
// content negotiation.
//
// A [MediaType] is an immutable value such as "text/html",
// "application/*+xml" or "text/plain;charset=utf-8". It exposes the main
// type, subtype and parameters, and implements the relations negotiation
// code is built on:
//
//   - [MediaType.Includes]: asymmetric range inclusion ("text/*" includes "text/plain")
//   - [MediaType.IsCompatible]: symmetric inclusion in either direction
//   - [MediaType.IsConcrete]: no wildcard in the main type or subtype
//   - [MostSpecific]: selects the most specific candidate of a list
//
// # Parsing
//
// [Parse] never fails. Client-supplied values are accepted best-effort so
// that negotiation code can tolerate malformed Accept values:
//
//	mediatype.Parse("text")               // text/*
//	mediatype.Parse(" Text / HTML ")      // text/html
//	mediatype.Parse("text/html; q=0.5")   // text/html;q=0.5
//
// # Registry
//
// A [Registry] interns media types so that well-known instances can be
// compared by identity. Registries are owned by their caller:
//
//	reg := mediatype.NewRegistry()
//	acme := reg.Register("application/vnd.acme+json", "Acme document")
//	reg.ValueOf("application/vnd.acme+json") == acme // true
//	reg.ValueOf("text/x-unknown")                   // parsed, not registered
//
// [Default] returns a process-wide registry used by the package-level
// [Register] and [ValueOf] helpers.
//
// # Extensions
//
// [ExtensionMap] maps file extensions to media types in both directions,
// with [DefaultExtensions] covering common formats.
//
// Related packages:
//   - rivaas.dev/mediatype/negotiate selects a representation from an Accept header
//   - rivaas.dev/mediatype/codec picks encoders and decoders by media type
//   - rivaas.dev/mediatype/config loads media type definitions from files
//   - rivaas.dev/mediatype/detect sniffs the media type of a payload
package mediatype
