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

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type extensionMapping struct {
	Extension string `json:"extension" yaml:"extension" toml:"extension"`
	Type      string `json:"type" yaml:"type" toml:"type"`
}

type extResult struct {
	Mappings []extensionMapping `json:"mappings" yaml:"mappings" toml:"mappings"`
}

func newExtCmd(e *env) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "ext EXT...",
		Short: "Map file extensions to media types",
		Long: "Map file extensions to media types.\n\n" +
			"With --reverse the arguments are media types and their preferred\n" +
			"extension is printed. Unknown entries print \"-\".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res extResult
			for _, arg := range args {
				if reverse {
					ext, ok := e.extensions.Extension(e.registry.ValueOf(arg))
					if !ok {
						ext = "-"
					}
					res.Mappings = append(res.Mappings, extensionMapping{Extension: ext, Type: arg})
					continue
				}

				name := "-"
				if mt, ok := e.extensions.MediaType(arg); ok {
					name = mt.String()
				}
				res.Mappings = append(res.Mappings, extensionMapping{Extension: strings.TrimPrefix(arg, "."), Type: name})
			}

			return e.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				for _, m := range res.Mappings {
					var err error
					if reverse {
						_, err = fmt.Fprintf(w, "%s: %s\n", m.Type, m.Extension)
					} else {
						_, err = fmt.Fprintf(w, "%s: %s\n", m.Extension, m.Type)
					}
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "map media types to extensions")
	return cmd
}

type typesResult struct {
	Types []typeInfo `json:"types" yaml:"types" toml:"types"`
}

func newTypesCmd(e *env) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "types [PATTERN]",
		Short: "List registered media types",
		Long: "List registered media types, sorted by name.\n\n" +
			"PATTERN is a media range such as \"image/*\" restricting the list\n" +
			"to the types it includes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res typesResult
			for _, mt := range e.registry.Types() {
				if len(args) == 1 && !e.registry.ValueOf(args[0]).Includes(mt) {
					continue
				}
				if !all && !mt.IsConcrete() {
					continue
				}
				res.Types = append(res.Types, e.describe(mt))
			}

			return e.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				for _, t := range res.Types {
					if _, err := fmt.Fprintf(w, "%-40s %s\n", t.Name, t.Description); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include media ranges such as text/*")
	return cmd
}
