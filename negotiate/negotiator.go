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
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"rivaas.dev/mediatype"
)

// Negotiator selects media types from Accept headers.
//
// Thread-safety: a Negotiator is safe for concurrent use once created.
type Negotiator struct {
	registry   *mediatype.Registry
	extensions *mediatype.ExtensionMap
	logger     *slog.Logger

	cacheSize int
	cache     *lru.Cache

	meterProvider metric.MeterProvider
	negotiations  metric.Int64Counter
	cacheHits     metric.Int64Counter

	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
}

// New creates a [Negotiator] with the given options.
// It returns an error when the configuration is invalid or the metric
// instruments cannot be created. For a version that panics, use [MustNew].
func New(opts ...Option) (*Negotiator, error) {
	n := &Negotiator{
		registry:      mediatype.Default(),
		extensions:    mediatype.DefaultExtensions(),
		logger:        mediatype.NoopLogger(),
		cacheSize:     DefaultCacheSize,
		meterProvider: noop.NewMeterProvider(),

		tracerProvider: tracenoop.NewTracerProvider(),
	}
	for _, opt := range opts {
		opt(n)
	}

	if n.cacheSize < 0 {
		return nil, fmt.Errorf("invalid configuration: %w: %d", ErrCacheSizeNegative, n.cacheSize)
	}
	if n.cacheSize > 0 {
		cache, err := lru.New(n.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create accept cache: %w", err)
		}
		n.cache = cache
	}
	if err := n.initMetrics(); err != nil {
		return nil, err
	}
	n.tracer = n.tracerProvider.Tracer(instrumentationName)

	return n, nil
}

// MustNew creates a [Negotiator] and panics on error.
func MustNew(opts ...Option) *Negotiator {
	n, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize negotiator: %v", err))
	}
	return n
}

// Preferences returns the parsed preferences of an Accept header.
// Results are cached per header value.
func (n *Negotiator) Preferences(accept string) []Preference {
	return slices.Clone(n.preferences(context.Background(), accept))
}

// preferences returns the cached, shared preference slice for accept.
func (n *Negotiator) preferences(ctx context.Context, accept string) []Preference {
	if n.cache == nil {
		return ParseAccept(accept, n.registry)
	}
	if v, ok := n.cache.Get(accept); ok {
		if prefs, ok := v.([]Preference); ok {
			n.cacheHits.Add(ctx, 1)
			return prefs
		}
	}
	prefs := ParseAccept(accept, n.registry)
	n.cache.Add(accept, prefs)
	return prefs
}

// Negotiate returns the offer that best satisfies the Accept header.
//
// An empty header accepts anything and yields the first offer. Otherwise
// every offer takes the quality of the most specific range that includes
// it; ranges whose parameters match the offer are preferred over ranges
// that only match its type. Offers with quality 0 are excluded. The highest
// quality wins; ties go to the offer matched by the more specific range,
// then to the earlier offer. Nil offers are ignored.
//
// It returns [ErrNoOffers] without offers and [ErrNotAcceptable] when no
// offer is acceptable.
func (n *Negotiator) Negotiate(ctx context.Context, accept string, offers ...*mediatype.MediaType) (*mediatype.MediaType, error) {
	ctx, span := n.tracer.Start(ctx, "mediatype.Negotiate", trace.WithAttributes(
		attribute.String("mediatype.accept", accept),
		attribute.Int("mediatype.offers", len(offers)),
	))
	defer span.End()

	mt, err := n.negotiate(ctx, accept, offers)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("mediatype.selected", mt.Name()))
	return mt, nil
}

func (n *Negotiator) negotiate(ctx context.Context, accept string, offers []*mediatype.MediaType) (*mediatype.MediaType, error) {
	offers = slices.DeleteFunc(slices.Clone(offers), func(mt *mediatype.MediaType) bool { return mt == nil })
	if len(offers) == 0 {
		return nil, ErrNoOffers
	}

	prefs := n.preferences(ctx, accept)
	if len(prefs) == 0 {
		n.recordOutcome(ctx, true)
		return offers[0], nil
	}

	ranges := slices.Clone(prefs)
	slices.SortStableFunc(ranges, func(a, b Preference) int {
		return mediatype.CompareSpecificity(a.Type, b.Type)
	})

	var (
		best        *mediatype.MediaType
		bestQuality float64
		bestRange   *mediatype.MediaType
	)
	for _, offer := range offers {
		r, ok := matchRange(ranges, offer)
		if !ok || r.Quality <= 0 {
			continue
		}
		if best == nil || r.Quality > bestQuality ||
			(r.Quality == bestQuality && mediatype.CompareSpecificity(r.Type, bestRange) < 0) {
			best, bestQuality, bestRange = offer, r.Quality, r.Type
		}
	}

	if best == nil {
		n.recordOutcome(ctx, false)
		n.logger.DebugContext(ctx, "no acceptable media type", "accept", accept, "offers", len(offers))
		return nil, ErrNotAcceptable
	}

	n.recordOutcome(ctx, true)
	n.logger.DebugContext(ctx, "negotiated media type", "accept", accept, "type", best.Name(), "quality", bestQuality)
	return best, nil
}

// matchRange returns the most specific range including offer. ranges must
// be sorted most specific first.
func matchRange(ranges []Preference, offer *mediatype.MediaType) (Preference, bool) {
	for _, r := range ranges {
		if r.Type.IncludesParameters(offer) {
			return r, true
		}
	}
	for _, r := range ranges {
		if r.Type.Includes(offer) {
			return r, true
		}
	}
	return Preference{}, false
}

// Accepts is like [Negotiator.Negotiate] for offers given as strings.
// An offer is either a media type ("application/json") or a short name
// resolved through the extension map ("json"). It returns the chosen offer
// exactly as given, or "" when none is acceptable.
//
// Examples:
//
//	// Accept: text/html, application/json;q=0.8
//	n.Accepts(accept, "json", "html")  // "html"
//
//	// Accept: */*
//	n.Accepts(accept, "json", "xml")   // "json"
func (n *Negotiator) Accepts(accept string, offers ...string) string {
	if len(offers) == 0 {
		return ""
	}

	resolved := make([]*mediatype.MediaType, len(offers))
	for i, offer := range offers {
		resolved[i] = n.resolveOffer(offer)
	}

	mt, err := n.Negotiate(context.Background(), accept, resolved...)
	if err != nil {
		return ""
	}
	for i, r := range resolved {
		if r == mt {
			return offers[i]
		}
	}
	return ""
}

// resolveOffer turns a short name or media type string into a media type.
func (n *Negotiator) resolveOffer(offer string) *mediatype.MediaType {
	offer = strings.TrimSpace(offer)
	if offer == "" {
		return nil
	}
	if !strings.Contains(offer, "/") {
		if mt, ok := n.extensions.MediaType(offer); ok {
			return mt
		}
	}
	return n.registry.ValueOf(offer)
}

// Match selects among supported types the most specific one compatible
// with any accepted type. Supported types are kept in their order and
// reduced with [mediatype.MostSpecific].
//
// It returns [ErrNotAcceptable] when no supported type is compatible.
func (n *Negotiator) Match(supported, accepted []*mediatype.MediaType) (*mediatype.MediaType, error) {
	ctx := context.Background()

	compatible := make([]*mediatype.MediaType, 0, len(supported))
	for _, s := range supported {
		if s == nil {
			continue
		}
		if slices.ContainsFunc(accepted, func(a *mediatype.MediaType) bool { return a != nil && s.IsCompatible(a) }) {
			compatible = append(compatible, s)
		}
	}

	mt, err := mediatype.MostSpecific(compatible...)
	if err != nil {
		n.recordOutcome(ctx, false)
		return nil, ErrNotAcceptable
	}
	n.recordOutcome(ctx, true)
	return mt, nil
}
