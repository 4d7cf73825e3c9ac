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

	"rivaas.dev/mediatype/negotiate"
)

type preferenceInfo struct {
	Type    string  `json:"type" yaml:"type" toml:"type"`
	Quality float64 `json:"quality" yaml:"quality" toml:"quality"`
}

type negotiateResult struct {
	Accept      string           `json:"accept" yaml:"accept" toml:"accept"`
	Selected    string           `json:"selected" yaml:"selected" toml:"selected"`
	Preferences []preferenceInfo `json:"preferences,omitempty" yaml:"preferences,omitempty" toml:"preferences,omitempty"`
}

type negotiateOptions struct {
	accept      string
	preferences bool
}

func newNegotiateCmd(e *env) *cobra.Command {
	var opts negotiateOptions

	cmd := &cobra.Command{
		Use:   "negotiate --accept HEADER OFFER...",
		Short: "Select the offer that best satisfies an Accept header",
		Long: "Select the offer that best satisfies an Accept header.\n\n" +
			"Offers are media types (application/json) or extensions (json).\n" +
			"The chosen offer is printed as given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNegotiate(cmd, e, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.accept, "accept", "a", "", "Accept header value, empty accepts anything")
	cmd.Flags().BoolVar(&opts.preferences, "preferences", false, "also print the parsed preferences")
	return cmd
}

func runNegotiate(cmd *cobra.Command, e *env, opts negotiateOptions, offers []string) error {
	n, err := negotiate.New(
		negotiate.WithRegistry(e.registry),
		negotiate.WithExtensions(e.extensions),
		negotiate.WithLogger(e.logger),
		negotiate.WithCacheSize(0),
	)
	if err != nil {
		return err
	}

	selected := n.Accepts(opts.accept, offers...)
	if selected == "" {
		return fmt.Errorf("%w: %q", negotiate.ErrNotAcceptable, opts.accept)
	}

	res := negotiateResult{Accept: opts.accept, Selected: selected}
	if opts.preferences {
		for _, p := range n.Preferences(opts.accept) {
			res.Preferences = append(res.Preferences, preferenceInfo{Type: p.Type.String(), Quality: p.Quality})
		}
	}

	return e.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
		for _, p := range res.Preferences {
			if _, err := fmt.Fprintf(w, "%s;q=%g\n", p.Type, p.Quality); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, res.Selected)
		return err
	})
}
