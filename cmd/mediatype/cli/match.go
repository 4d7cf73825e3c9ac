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

	"github.com/spf13/cobra"

	"rivaas.dev/mediatype"
)

type parseResult struct {
	Types []typeInfo `json:"types" yaml:"types" toml:"types"`
}

func newParseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "parse TYPE...",
		Short: "Show the components of media types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res parseResult
			for _, mt := range e.resolve(args) {
				if mt == nil {
					continue
				}
				res.Types = append(res.Types, e.describe(mt))
			}
			return e.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				for _, t := range res.Types {
					if err := t.writeText(w); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

type relationResult struct {
	A      string `json:"a" yaml:"a" toml:"a"`
	B      string `json:"b" yaml:"b" toml:"b"`
	Result bool   `json:"result" yaml:"result" toml:"result"`
}

func (e *env) renderRelation(cmd *cobra.Command, a, b *mediatype.MediaType, result bool) error {
	res := relationResult{A: a.String(), B: b.String(), Result: result}
	return e.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result)
		return err
	})
}

func newIncludesCmd(e *env) *cobra.Command {
	var parameters bool

	cmd := &cobra.Command{
		Use:   "includes RANGE TYPE",
		Short: "Report whether RANGE includes TYPE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := e.resolve(args)
			container, candidate := types[0], types[1]

			result := container.Includes(candidate)
			if parameters {
				result = container.IncludesParameters(candidate)
			}
			return e.renderRelation(cmd, container, candidate, result)
		},
	}
	cmd.Flags().BoolVar(&parameters, "parameters", false, "also require the parameters of RANGE to be present in TYPE")
	return cmd
}

func newCompatibleCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "compatible A B",
		Short: "Report whether A includes B or B includes A",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := e.resolve(args)
			return e.renderRelation(cmd, types[0], types[1], types[0].IsCompatible(types[1]))
		},
	}
}

type mostSpecificResult struct {
	Selected string   `json:"selected" yaml:"selected" toml:"selected"`
	Sorted   []string `json:"sorted,omitempty" yaml:"sorted,omitempty" toml:"sorted,omitempty"`
}

func newMostSpecificCmd(e *env) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "most-specific TYPE...",
		Short: "Select the most specific media type",
		RunE: func(cmd *cobra.Command, args []string) error {
			types := e.resolve(args)
			mt, err := mediatype.MostSpecific(types...)
			if err != nil {
				return err
			}

			res := mostSpecificResult{Selected: mt.String()}
			if sorted {
				mediatype.SortBySpecificity(types)
				for _, t := range types {
					if t != nil {
						res.Sorted = append(res.Sorted, t.String())
					}
				}
			}
			return e.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				if !sorted {
					_, err := fmt.Fprintln(w, res.Selected)
					return err
				}
				for _, name := range res.Sorted {
					if _, err := fmt.Fprintln(w, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&sorted, "sort", false, "print every type, most specific first")
	return cmd
}
