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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/mediatype"
	"rivaas.dev/mediatype/codec"
	"rivaas.dev/mediatype/internal/logging"
	"rivaas.dev/mediatype/negotiate"
)

// run executes the command and returns its standard output and error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

const acmeTypes = `default: application/vnd.acme.bin
types:
  application/vnd.acme+json:
    description: Acme document
    extensions: [acme]
    preferred: true
`

func TestRun(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), []string{"compatible", "text/plain", "text/*"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "true\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestParseCmd(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "parse", "text/html; charset=utf-8")
	require.NoError(t, err)
	assert.Contains(t, out, "text/html;charset=utf-8\n")
	assert.Contains(t, out, "main type:   text\n")
	assert.Contains(t, out, "parameter:   charset=utf-8\n")
	assert.Contains(t, out, "concrete:    true\n")
	assert.Contains(t, out, "parent:      text/html\n")
	assert.Contains(t, out, "extension:   html\n")
}

func TestParseCmd_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "-o", "json", "parse", "text/plain", "text")
	require.NoError(t, err)

	var res parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Types, 2)

	assert.Equal(t, typeInfo{
		Name:        "text/plain",
		MainType:    "text",
		SubType:     "plain",
		Concrete:    true,
		Specificity: mediatype.SpecificityConcrete,
		Parent:      "text/*",
		Description: "Plain text",
		Extension:   "txt",
	}, res.Types[0])
	assert.Equal(t, "text/*", res.Types[1].Name)
	assert.False(t, res.Types[1].Concrete)
	assert.Equal(t, "*/*", res.Types[1].Parent)
}

func TestParseCmd_MsgPack(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "-o", "msgpack", "parse", "image/png")
	require.NoError(t, err)

	var res parseResult
	require.NoError(t, codec.MsgPackCodec{}.Decode([]byte(out), &res))
	require.Len(t, res.Types, 1)
	assert.Equal(t, "image/png", res.Types[0].Name)
	assert.Equal(t, "png", res.Types[0].Extension)
}

func TestRelationCmds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"range includes type", []string{"includes", "text/*", "text/plain"}, "true\n"},
		{"type does not include range", []string{"includes", "text/plain", "text/*"}, "false\n"},
		{"suffix range", []string{"includes", "application/*+xml", "application/atom+xml"}, "true\n"},
		{"suffix range excludes json", []string{"includes", "application/*+xml", "application/json"}, "false\n"},
		{"parameters ignored", []string{"includes", "application/x;a=1", "application/x"}, "true\n"},
		{"parameters required", []string{"includes", "--parameters", "application/x;a=1", "application/x"}, "false\n"},
		{"compatible", []string{"compatible", "text/plain", "text/*"}, "true\n"},
		{"incompatible", []string{"compatible", "text/plain", "image/*"}, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestIncludesCmd_YAML(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "--output", "yaml", "includes", "*/*", "image/png")
	require.NoError(t, err)

	var res relationResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, relationResult{A: "*/*", B: "image/png", Result: true}, res)
}

func TestMostSpecificCmd(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "most-specific", "text/*", "text/html", "application/xml")
	require.NoError(t, err)
	assert.Equal(t, "application/xml\n", out)

	out, _, err = run(t, "", "most-specific", "--sort", "*/*", "text/plain", "text/*")
	require.NoError(t, err)
	assert.Equal(t, "text/plain\ntext/*\n*/*\n", out)

	_, _, err = run(t, "", "most-specific")
	require.ErrorIs(t, err, mediatype.ErrNoCandidates)
}

func TestNegotiateCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"extension offers", []string{"--accept", "text/html, application/json;q=0.8", "json", "html"}, "html\n"},
		{"media type offers", []string{"-a", "application/*", "text/plain", "application/json"}, "application/json\n"},
		{"empty header", []string{"xml", "json"}, "xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := run(t, "", append([]string{"negotiate"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestNegotiateCmd_NotAcceptable(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "negotiate", "--accept", "image/png", "json")
	require.ErrorIs(t, err, negotiate.ErrNotAcceptable)
}

func TestNegotiateCmd_Preferences(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "-o", "application/json", "negotiate", "--preferences",
		"--accept", "text/html, application/json;q=0.8", "json")
	require.NoError(t, err)

	var res negotiateResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "json", res.Selected)
	assert.Equal(t, []preferenceInfo{
		{Type: "text/html", Quality: 1},
		{Type: "application/json", Quality: 0.8},
	}, res.Preferences)
}

func TestDetectCmd(t *testing.T) {
	t.Parallel()

	png := writeFile(t, "image.bin", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	conf := writeFile(t, "app.yaml", []byte("name: demo\n"))

	out, _, err := run(t, "%PDF-1.4\n", "detect", png, conf, "-")
	require.NoError(t, err)
	assert.Equal(t,
		png+": image/png\n"+conf+": application/yaml\n-: application/pdf\n",
		out)

	_, _, err = run(t, "", "detect", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestExtCmd(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "ext", "json", ".html", "yml", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "json: application/json\nhtml: text/html\nyml: application/yaml\nunknown: -\n", out)

	out, _, err = run(t, "", "ext", "--reverse", "text/html", "image/jpeg", "x/y")
	require.NoError(t, err)
	assert.Equal(t, "text/html: html\nimage/jpeg: jpg\nx/y: -\n", out)
}

func TestTypesCmd(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "types", "image/*")
	require.NoError(t, err)
	assert.Contains(t, out, "image/png")
	assert.Contains(t, out, "PNG image")
	assert.NotContains(t, out, "image/*")
	assert.NotContains(t, out, "text/plain")

	out, _, err = run(t, "", "types", "--all", "image/*")
	require.NoError(t, err)
	assert.Contains(t, out, "image/*")
}

func TestTypesFlag(t *testing.T) {
	t.Parallel()

	defs := writeFile(t, "acme.yaml", []byte(acmeTypes))

	out, _, err := run(t, "", "--types", defs, "ext", "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme: application/vnd.acme+json\n", out)

	out, _, err = run(t, "", "--types", defs, "ext", "--reverse", "application/vnd.acme+json")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.acme+json: acme\n", out)

	out, _, err = run(t, "", "--types", defs, "parse", "application/vnd.acme+json")
	require.NoError(t, err)
	assert.Contains(t, out, "description: Acme document\n")

	blob := writeFile(t, "report.acme", []byte{0x00, 0x01, 0x02, 0x03, 0xfe, 0xff})
	other := writeFile(t, "report.unknown", []byte{0x00, 0x01, 0x02, 0x03, 0xfe, 0xff})
	out, _, err = run(t, "", "--types", defs, "detect", blob, other)
	require.NoError(t, err)
	assert.Equal(t, blob+": application/vnd.acme+json\n"+other+": application/vnd.acme.bin\n", out)
}

func TestTypesFlag_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "--types", filepath.Join(t.TempDir(), "missing.yaml"), "types")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load media type definitions")

	invalid := writeFile(t, "invalid.yaml", []byte("default: text/*\n"))
	_, _, err = run(t, "", "--types", invalid, "types")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply media type definitions")
}

func TestLoggingFlags(t *testing.T) {
	t.Parallel()

	defs := writeFile(t, "acme.yaml", []byte(acmeTypes))

	_, stderr, err := run(t, "", "--log-level", "debug", "--log-format", "json", "--types", defs, "types")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.NotEmpty(t, lines)
	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, "loaded media type definitions", last["msg"])
	assert.Contains(t, stderr, "registered media type")

	_, _, err = run(t, "", "--log-level", "verbose", "types")
	require.ErrorIs(t, err, logging.ErrInvalidLevel)

	_, _, err = run(t, "", "--log-format", "xml", "types")
	require.ErrorIs(t, err, logging.ErrInvalidHandler)
}

func TestOutputFlag_Unsupported(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "-o", "xml", "types")
	require.ErrorIs(t, err, ErrUnsupportedOutput)

	_, _, err = run(t, "", "-o", "nope", "types")
	require.ErrorIs(t, err, ErrUnsupportedOutput)
}
