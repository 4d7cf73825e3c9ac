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
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/mediatype"
)

// DefaultCacheSize is the number of parsed Accept headers kept by default.
const DefaultCacheSize = 256

// Option defines functional options for [Negotiator] configuration.
type Option func(*Negotiator)

// WithRegistry sets the registry Accept ranges are resolved against.
// Defaults to [mediatype.Default].
func WithRegistry(reg *mediatype.Registry) Option {
	return func(n *Negotiator) {
		if reg != nil {
			n.registry = reg
		}
	}
}

// WithExtensions sets the extension map used by [Negotiator.Accepts] to
// resolve short offer names such as "json". Defaults to
// [mediatype.DefaultExtensions].
func WithExtensions(exts *mediatype.ExtensionMap) Option {
	return func(n *Negotiator) {
		if exts != nil {
			n.extensions = exts
		}
	}
}

// WithLogger sets the logger for negotiation debug output.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Negotiator) {
		if logger == nil {
			logger = mediatype.NoopLogger()
		}
		n.logger = logger
	}
}

// WithCacheSize sets how many parsed Accept headers are cached.
// A size of 0 disables caching.
//
// Example:
//
//	n := negotiate.MustNew(negotiate.WithCacheSize(1024))
func WithCacheSize(size int) Option {
	return func(n *Negotiator) {
		n.cacheSize = size
	}
}

// WithMeterProvider sets the OpenTelemetry [metric.MeterProvider] used for
// negotiation counters. Defaults to a no-op provider.
//
// Example:
//
//	mp := sdkmetric.NewMeterProvider(...)
//	n := negotiate.MustNew(negotiate.WithMeterProvider(mp))
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(n *Negotiator) {
		if provider != nil {
			n.meterProvider = provider
		}
	}
}

// WithTracerProvider sets the OpenTelemetry [trace.TracerProvider] used to
// trace [Negotiator.Negotiate]. Defaults to a no-op provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(n *Negotiator) {
		if provider != nil {
			n.tracerProvider = provider
		}
	}
}
