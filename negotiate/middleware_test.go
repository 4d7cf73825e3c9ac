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

//go:build !integration

package negotiate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/mediatype"
)

func echoSelected(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mt, ok := Selected(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(mt.Name()))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	n := MustNew()
	offers := []*mediatype.MediaType{mediatype.ApplicationJSON, mediatype.ApplicationYAML}
	handler := n.Middleware(offers)(echoSelected(t))

	tests := []struct {
		name        string
		accept      string
		status      int
		body        string
		contentType string
	}{
		{"no accept header", "", http.StatusOK, "application/json", "application/json"},
		{"prefers yaml", "application/yaml, application/json;q=0.5", http.StatusOK, "application/yaml", "application/yaml"},
		{"range", "application/*", http.StatusOK, "application/json", "application/json"},
		{"not acceptable", "image/png", http.StatusNotAcceptable, "Not Acceptable\n", "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, "Accept", rec.Header().Get("Vary"))
		})
	}
}

func TestMiddleware_Options(t *testing.T) {
	t.Parallel()

	n := MustNew()
	custom := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	var contentType string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = w.Header().Get("Content-Type")
		echoSelected(t).ServeHTTP(w, r)
	})
	handler := n.Middleware(
		[]*mediatype.MediaType{mediatype.TextPlain},
		WithNotAcceptableHandler(custom),
		WithContentType(false),
	)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/*")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Body.String())
	assert.Empty(t, contentType)
}

func TestSelected_Missing(t *testing.T) {
	t.Parallel()

	_, ok := Selected(t.Context())
	assert.False(t, ok)
}
