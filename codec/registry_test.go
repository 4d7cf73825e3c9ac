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

package codec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/mediatype"
)

type stubCodec struct{ name string }

func (s stubCodec) Encode(any) ([]byte, error) { return []byte(s.name), nil }
func (stubCodec) Decode([]byte, any) error    { return nil }

func TestLookup_Builtin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mt       *mediatype.MediaType
		expected Codec
	}{
		{"json", mediatype.ApplicationJSON, JSONCodec{}},
		{"json with charset", mediatype.Parse("application/json;charset=utf-8"), JSONCodec{}},
		{"json suffix", mediatype.Parse("application/vnd.acme+json"), JSONCodec{}},
		{"problem json", mediatype.ApplicationProblemJSON, JSONCodec{}},
		{"yaml", mediatype.ApplicationYAML, YAMLCodec{}},
		{"legacy yaml", mediatype.ApplicationXYAML, YAMLCodec{}},
		{"text yaml", mediatype.TextYAML, YAMLCodec{}},
		{"text range", mediatype.TextAll, YAMLCodec{}},
		{"toml", mediatype.ApplicationTOML, TOMLCodec{}},
		{"msgpack", mediatype.ApplicationMsgPack, MsgPackCodec{}},
		{"legacy msgpack", mediatype.ApplicationXMsgPack, MsgPackCodec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Lookup(tt.mt)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, c)
		})
	}
}

func TestLookup_NotFound(t *testing.T) {
	t.Parallel()

	c, err := Lookup(mediatype.ApplicationAtom)
	require.ErrorIs(t, err, ErrCodecNotFound)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "application/atom+xml")

	_, err = Lookup(nil)
	require.ErrorIs(t, err, mediatype.ErrNilMediaType)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(mediatype.ApplicationAllXML, stubCodec{"xml range"}))
	require.NoError(t, r.Register(mediatype.ApplicationAtom, stubCodec{"atom"}))

	c, err := r.Lookup(mediatype.ApplicationAtom)
	require.NoError(t, err)
	assert.Equal(t, stubCodec{"atom"}, c)

	c, err = r.Lookup(mediatype.ApplicationRSS)
	require.NoError(t, err)
	assert.Equal(t, stubCodec{"xml range"}, c)

	// Same essence replaces the codec.
	require.NoError(t, r.Register(mediatype.Parse("application/atom+xml;type=entry"), stubCodec{"atom 2"}))
	c, err = r.Lookup(mediatype.ApplicationAtom)
	require.NoError(t, err)
	assert.Equal(t, stubCodec{"atom 2"}, c)
	assert.Len(t, r.MediaTypes(), 2)

	require.ErrorIs(t, r.Register(nil, stubCodec{}), mediatype.ErrNilMediaType)
	require.ErrorIs(t, r.Register(mediatype.TextPlain, nil), ErrNilCodec)
}

func TestRegistry_MostSpecificCompatible(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(mediatype.All, stubCodec{"all"}))
	require.NoError(t, r.Register(mediatype.TextAll, stubCodec{"text"}))

	c, err := r.Lookup(mediatype.TextCSV)
	require.NoError(t, err)
	assert.Equal(t, stubCodec{"text"}, c)

	c, err = r.Lookup(mediatype.ImagePNG)
	require.NoError(t, err)
	assert.Equal(t, stubCodec{"all"}, c)
}

func TestRegistry_EncodeDecode(t *testing.T) {
	t.Parallel()

	data, err := Default().Encode(mediatype.ApplicationJSON, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	var out map[string]int
	require.NoError(t, Default().Decode(mediatype.Parse("application/vnd.x+json"), data, &out))
	assert.Equal(t, map[string]int{"a": 1}, out)

	_, err = Default().Encode(mediatype.ImagePNG, nil)
	require.ErrorIs(t, err, ErrCodecNotFound)
	require.ErrorIs(t, Default().Decode(mediatype.ImagePNG, nil, &out), ErrCodecNotFound)
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Register(mediatype.TextAll, stubCodec{"text"})
		}()
		go func() {
			defer wg.Done()
			_, _ = r.Lookup(mediatype.TextPlain)
		}()
	}
	wg.Wait()
	assert.Len(t, r.MediaTypes(), 1)
}
