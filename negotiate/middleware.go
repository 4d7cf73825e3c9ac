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
	"net/http"

	"rivaas.dev/mediatype"
)

type contextKey struct{}

// MiddlewareOption configures [Negotiator.Middleware].
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	// notAcceptable serves requests for which no offer is acceptable.
	notAcceptable http.Handler

	// setContentType sets Content-Type to the selected offer before calling next.
	setContentType bool
}

func defaultMiddlewareConfig() *middlewareConfig {
	return &middlewareConfig{
		notAcceptable: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
		}),
		setContentType: true,
	}
}

// WithNotAcceptableHandler replaces the default 406 response.
// A nil handler keeps the default.
func WithNotAcceptableHandler(h http.Handler) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		if h != nil {
			cfg.notAcceptable = h
		}
	}
}

// WithContentType controls whether the selected offer is written to the
// Content-Type response header. Default: true.
func WithContentType(enabled bool) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.setContentType = enabled
	}
}

// Middleware returns net/http middleware that negotiates the response
// media type among offers from the request's Accept header.
//
// The selected offer is stored in the request context, see [Selected].
// "Vary: Accept" is always added to the response. Requests for which no
// offer is acceptable are served by the not-acceptable handler and never
// reach next.
//
//	n := negotiate.MustNew()
//	h := n.Middleware([]*mediatype.MediaType{mediatype.ApplicationJSON, mediatype.ApplicationYAML})(api)
//
//	func api(w http.ResponseWriter, r *http.Request) {
//	    mt, _ := negotiate.Selected(r.Context())
//	    data, _ := codec.Default().Encode(mt, payload)
//	    w.Write(data)
//	}
func (n *Negotiator) Middleware(offers []*mediatype.MediaType, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := defaultMiddlewareConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")

			mt, err := n.Negotiate(r.Context(), r.Header.Get("Accept"), offers...)
			if err != nil {
				cfg.notAcceptable.ServeHTTP(w, r)
				return
			}

			if cfg.setContentType && mt.IsConcrete() {
				w.Header().Set("Content-Type", mt.Name())
			}
			ctx := context.WithValue(r.Context(), contextKey{}, mt)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Selected returns the media type chosen by [Negotiator.Middleware].
func Selected(ctx context.Context) (*mediatype.MediaType, bool) {
	mt, ok := ctx.Value(contextKey{}).(*mediatype.MediaType)
	return mt, ok
}
