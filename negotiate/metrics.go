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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "rivaas.dev/mediatype/negotiate"

// Negotiation outcomes reported by the negotiations counter.
const (
	OutcomeMatched       = "matched"
	OutcomeNotAcceptable = "not_acceptable"
)

var (
	attrMatched       = metric.WithAttributes(attribute.String("outcome", OutcomeMatched))
	attrNotAcceptable = metric.WithAttributes(attribute.String("outcome", OutcomeNotAcceptable))
)

// initMetrics creates the negotiation instruments.
func (n *Negotiator) initMetrics() error {
	meter := n.meterProvider.Meter(instrumentationName)

	var err error
	n.negotiations, err = meter.Int64Counter(
		"mediatype_negotiations_total",
		metric.WithDescription("Total number of content negotiations by outcome"),
	)
	if err != nil {
		return fmt.Errorf("failed to create negotiations counter: %w", err)
	}

	n.cacheHits, err = meter.Int64Counter(
		"mediatype_accept_cache_hits_total",
		metric.WithDescription("Total number of Accept headers served from the cache"),
	)
	if err != nil {
		return fmt.Errorf("failed to create cache hits counter: %w", err)
	}

	return nil
}

// recordOutcome counts a finished negotiation.
func (n *Negotiator) recordOutcome(ctx context.Context, matched bool) {
	if matched {
		n.negotiations.Add(ctx, 1, attrMatched)
		return
	}
	n.negotiations.Add(ctx, 1, attrNotAcceptable)
}
