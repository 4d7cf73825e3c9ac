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

// Package cli implements the commands of the mediatype tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"rivaas.dev/mediatype"
	"rivaas.dev/mediatype/codec"
	"rivaas.dev/mediatype/config"
	"rivaas.dev/mediatype/internal/logging"
)

// ErrUnsupportedOutput is returned when --output names a format without a codec.
var ErrUnsupportedOutput = errors.New("unsupported output format")

type rootOptions struct {
	typeFiles []string
	logLevel  string
	logFormat string
	output    string
}

// env holds the objects shared by every subcommand. It is populated before
// a subcommand runs, once the persistent flags are parsed.
type env struct {
	logger     *slog.Logger
	registry   *mediatype.Registry
	extensions *mediatype.ExtensionMap
	codecs     *codec.Registry
	// output is nil for plain text output.
	output *mediatype.MediaType
}

// Run executes the mediatype command with args.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	e := &env{}

	cmd := &cobra.Command{
		Use:           "mediatype",
		Short:         "Parse, compare and negotiate media types",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd.Context(), opts, cmd.ErrOrStderr())
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringArrayVar(&opts.typeFiles, "types", nil, "media type definitions file (yaml, toml or json), repeatable")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "text", "log format: text, json or console")
	fs.StringVarP(&opts.output, "output", "o", "text", "output format: text, or a codec format such as json, yaml or toml")

	cmd.AddCommand(
		newParseCmd(e),
		newIncludesCmd(e),
		newCompatibleCmd(e),
		newMostSpecificCmd(e),
		newNegotiateCmd(e),
		newDetectCmd(e),
		newExtCmd(e),
		newTypesCmd(e),
	)
	return cmd
}

func (e *env) setup(ctx context.Context, opts *rootOptions, stderr io.Writer) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	handler, err := logging.ParseHandlerType(opts.logFormat)
	if err != nil {
		return err
	}
	l, err := logging.New(
		logging.WithHandlerType(handler),
		logging.WithLevel(level),
		logging.WithOutput(stderr),
	)
	if err != nil {
		return err
	}

	e.logger = l.Logger()
	e.registry = mediatype.NewRegistry(mediatype.WithLogger(e.logger))
	e.extensions = mediatype.DefaultExtensions()
	e.codecs = codec.Default()

	if err := e.loadTypes(ctx, opts.typeFiles); err != nil {
		return err
	}
	return e.setOutput(opts.output)
}

func (e *env) loadTypes(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	sources := make([]config.Source, len(paths))
	for i, path := range paths {
		sources[i] = config.NewFile(path, config.WithCodecs(e.codecs))
	}
	defs, err := config.Load(ctx, sources...)
	if err != nil {
		return fmt.Errorf("failed to load media type definitions: %w", err)
	}
	registered, err := defs.Apply(e.registry, e.extensions)
	if err != nil {
		return fmt.Errorf("failed to apply media type definitions: %w", err)
	}

	e.logger.Info("loaded media type definitions", "files", len(paths), "types", len(registered))
	return nil
}

// setOutput resolves the --output flag: "text", a short name such as
// "yaml", or a media type such as "application/json".
func (e *env) setOutput(format string) error {
	format = strings.TrimSpace(format)
	if format == "" || strings.EqualFold(format, "text") {
		e.output = nil
		return nil
	}

	var mt *mediatype.MediaType
	if strings.Contains(format, "/") {
		mt = e.registry.ValueOf(format)
	} else if byExt, ok := e.extensions.MediaType(format); ok {
		mt = byExt
	}
	if mt == nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, format)
	}
	if _, err := e.codecs.Lookup(mt); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedOutput, format, err)
	}
	e.output = mt
	return nil
}

// render writes v encoded with the --output codec, or calls text for
// plain text output.
func (e *env) render(w io.Writer, v any, text func(io.Writer) error) error {
	if e.output == nil {
		return text(w)
	}

	data, err := e.codecs.Encode(e.output, v)
	if err != nil {
		return fmt.Errorf("failed to encode output as %s: %w", e.output, err)
	}
	if !isBinary(e.output) && len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// isBinary reports whether output encoded as mt must be written unchanged.
func isBinary(mt *mediatype.MediaType) bool {
	return mediatype.ApplicationMsgPack.Includes(mt) || mediatype.ApplicationXMsgPack.Includes(mt)
}

// resolve turns command line arguments into media types.
func (e *env) resolve(names []string) []*mediatype.MediaType {
	out := make([]*mediatype.MediaType, 0, len(names))
	for _, name := range names {
		out = append(out, e.registry.ValueOf(name))
	}
	return out
}
