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

	"rivaas.dev/mediatype"
)

type parameterInfo struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

type typeInfo struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	MainType    string          `json:"main_type" yaml:"main_type" toml:"main_type"`
	SubType     string          `json:"sub_type" yaml:"sub_type" toml:"sub_type"`
	Parameters  []parameterInfo `json:"parameters,omitempty" yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Concrete    bool            `json:"concrete" yaml:"concrete" toml:"concrete"`
	Specificity int             `json:"specificity" yaml:"specificity" toml:"specificity"`
	Parent      string          `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
	Description string          `json:"description" yaml:"description" toml:"description"`
	Extension   string          `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension,omitempty"`
}

func (e *env) describe(mt *mediatype.MediaType) typeInfo {
	info := typeInfo{
		Name:        mt.Name(),
		MainType:    mt.MainType(),
		SubType:     mt.SubType(),
		Concrete:    mt.IsConcrete(),
		Specificity: mt.Specificity(),
		Description: mt.Description(),
	}
	for _, p := range mt.Parameters() {
		info.Parameters = append(info.Parameters, parameterInfo(p))
	}
	if parent := mt.Parent(); parent != nil {
		info.Parent = parent.Name()
	}
	if ext, ok := e.extensions.Extension(mt); ok {
		info.Extension = ext
	}
	return info
}

func (t typeInfo) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n  main type:   %s\n  sub type:    %s\n", t.Name, t.MainType, t.SubType)
	if err != nil {
		return err
	}
	for _, p := range t.Parameters {
		if _, err := fmt.Fprintf(w, "  parameter:   %s=%s\n", p.Name, p.Value); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "  concrete:    %t\n  specificity: %d\n  description: %s\n", t.Concrete, t.Specificity, t.Description)
	if err != nil {
		return err
	}
	if t.Parent != "" {
		if _, err := fmt.Fprintf(w, "  parent:      %s\n", t.Parent); err != nil {
			return err
		}
	}
	if t.Extension != "" {
		if _, err := fmt.Fprintf(w, "  extension:   %s\n", t.Extension); err != nil {
			return err
		}
	}
	return nil
}
