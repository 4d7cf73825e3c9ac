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
	"rivaas.dev/mediatype/detect"
)

type detection struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

type detectResult struct {
	Files []detection `json:"files" yaml:"files" toml:"files"`
}

func newDetectCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Detect the media type of files from their content",
		Long: "Detect the media type of files from their content.\n\n" +
			"The file extension is used when the content is not conclusive.\n" +
			"A FILE of \"-\" reads standard input.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := detect.New(
				detect.WithRegistry(e.registry),
				detect.WithExtensions(e.extensions),
				detect.WithLogger(e.logger),
			)

			var res detectResult
			for _, path := range args {
				var (
					mt  *mediatype.MediaType
					err error
				)
				if path == "-" {
					mt, err = d.DetectReader(cmd.InOrStdin())
				} else {
					mt, err = d.DetectFile(path)
				}
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				res.Files = append(res.Files, detection{Path: path, Type: mt.String()})
			}

			return e.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				for _, f := range res.Files {
					if _, err := fmt.Fprintf(w, "%s: %s\n", f.Path, f.Type); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
