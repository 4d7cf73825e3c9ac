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

package mediatype

import (
	"path/filepath"
	"strings"
	"sync"
)

// ExtensionMapping associates a file extension with a media type.
type ExtensionMapping struct {
	Extension string
	Type      *MediaType
}

// ExtensionMap is an ordered mapping between file extensions and media
// types. Several extensions may map to one media type and one extension may
// map to several media types; lookups in either direction return the first
// matching mapping.
//
// Thread-safety: all methods are safe for concurrent use.
type ExtensionMap struct {
	mu          sync.RWMutex
	mappings    []ExtensionMapping
	defaultType *MediaType
}

// NewExtensionMap creates an empty map whose default media type is
// [ApplicationOctetStream].
func NewExtensionMap() *ExtensionMap {
	return &ExtensionMap{defaultType: ApplicationOctetStream}
}

// DefaultExtensions creates a map preloaded with common extensions.
func DefaultExtensions() *ExtensionMap {
	e := NewExtensionMap()
	for _, m := range commonExtensions {
		e.Add(m.Extension, m.Type, false)
	}
	for _, m := range preferredExtensions {
		e.Add(m.Extension, m.Type, true)
	}
	return e
}

// Add maps ext to mt. Preferred mappings are placed before the existing
// ones so they win lookups in both directions. Leading dots and case are
// ignored. Empty extensions and nil media types are ignored.
func (e *ExtensionMap) Add(ext string, mt *MediaType, preferred bool) {
	ext = normalizeExtension(ext)
	if ext == "" || mt == nil {
		return
	}
	m := ExtensionMapping{Extension: ext, Type: mt}

	e.mu.Lock()
	defer e.mu.Unlock()
	if preferred {
		e.mappings = append([]ExtensionMapping{m}, e.mappings...)
		return
	}
	e.mappings = append(e.mappings, m)
}

// MediaType returns the media type of the first mapping for ext.
func (e *ExtensionMap) MediaType(ext string) (*MediaType, bool) {
	ext = normalizeExtension(ext)
	if ext == "" {
		return nil, false
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, m := range e.mappings {
		if m.Extension == ext {
			return m.Type, true
		}
	}
	return nil, false
}

// Extension returns the first extension mapped to a media type equal to mt,
// ignoring parameters.
func (e *ExtensionMap) Extension(mt *MediaType) (string, bool) {
	if mt == nil {
		return "", false
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, m := range e.mappings {
		if m.Type.EqualIgnoreParameters(mt) {
			return m.Extension, true
		}
	}
	return "", false
}

// ForPath returns the media type for the extension of path, or the
// default media type when the extension is unknown.
func (e *ExtensionMap) ForPath(path string) *MediaType {
	if mt, ok := e.MediaType(filepath.Ext(path)); ok {
		return mt
	}
	return e.DefaultMediaType()
}

// Mappings returns a snapshot of the mappings in lookup order.
func (e *ExtensionMap) Mappings() []ExtensionMapping {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]ExtensionMapping, len(e.mappings))
	copy(out, e.mappings)
	return out
}

// Clear removes every mapping. The default media type is kept.
func (e *ExtensionMap) Clear() {
	e.mu.Lock()
	e.mappings = nil
	e.mu.Unlock()
}

// DefaultMediaType returns the media type used for unknown extensions.
func (e *ExtensionMap) DefaultMediaType() *MediaType {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.defaultType
}

// SetDefaultMediaType sets the media type used for unknown extensions.
// A nil value restores [ApplicationOctetStream].
func (e *ExtensionMap) SetDefaultMediaType(mt *MediaType) {
	if mt == nil {
		mt = ApplicationOctetStream
	}
	e.mu.Lock()
	e.defaultType = mt
	e.mu.Unlock()
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// preferredExtensions win reverse lookups over the other extensions of their type.
var preferredExtensions = []ExtensionMapping{
	{"html", TextHTML},
	{"jpg", ImageJPEG},
	{"txt", TextPlain},
}

var commonExtensions = []ExtensionMapping{
	{"ai", ApplicationPostscript},
	{"atom", ApplicationAtom},
	{"au", AudioBasic},
	{"avi", VideoAVI},
	{"bin", ApplicationOctetStream},
	{"bmp", ImageBMP},
	{"css", TextCSS},
	{"csv", TextCSV},
	{"dib", ImageBMP},
	{"doc", ApplicationWord},
	{"dtd", ApplicationXMLDTD},
	{"eps", ApplicationPostscript},
	{"exe", ApplicationOctetStream},
	{"gif", ImageGIF},
	{"gz", ApplicationGnuZip},
	{"htm", TextHTML},
	{"ico", ImageIcon},
	{"ics", TextCalendar},
	{"jar", ApplicationJavaArchive},
	{"java", TextPlain},
	{"jpe", ImageJPEG},
	{"jpeg", ImageJPEG},
	{"js", ApplicationJavaScript},
	{"json", ApplicationJSON},
	{"latex", ApplicationLatex},
	{"md", TextMarkdown},
	{"mathml", ApplicationMathML},
	{"mid", AudioMIDI},
	{"midi", AudioMIDI},
	{"msgpack", ApplicationMsgPack},
	{"mov", VideoQuicktime},
	{"mp2", AudioMPEG},
	{"mp3", AudioMPEG},
	{"mp4", VideoMP4},
	{"mpk", ApplicationMsgPack},
	{"mpe", VideoMPEG},
	{"mpeg", VideoMPEG},
	{"mpg", VideoMPEG},
	{"n3", TextRDFN3},
	{"ogg", AudioOGG},
	{"pdf", ApplicationPDF},
	{"png", ImagePNG},
	{"pps", ApplicationPowerpoint},
	{"ppt", ApplicationPowerpoint},
	{"ps", ApplicationPostscript},
	{"qt", VideoQuicktime},
	{"rdf", ApplicationRDFXML},
	{"rss", ApplicationRSS},
	{"rtf", ApplicationRTF},
	{"snd", AudioBasic},
	{"svg", ImageSVG},
	{"tar", ApplicationTar},
	{"text", TextPlain},
	{"tgz", ApplicationGnuTar},
	{"tif", ImageTIFF},
	{"tiff", ImageTIFF},
	{"toml", ApplicationTOML},
	{"tsv", TextTSV},
	{"ttl", TextTurtle},
	{"ulw", AudioBasic},
	{"vcf", TextVCard},
	{"vrml", ModelVRML},
	{"wadl", ApplicationWADL},
	{"wav", AudioWAV},
	{"webm", VideoWebM},
	{"webp", ImageWebP},
	{"wmv", VideoWMV},
	{"wrl", ModelVRML},
	{"xht", ApplicationXHTML},
	{"xhtml", ApplicationXHTML},
	{"xls", ApplicationExcel},
	{"xml", ApplicationXML},
	{"xml", TextXML},
	{"xsd", ApplicationXSD},
	{"xslt", ApplicationXSLT},
	{"yaml", ApplicationYAML},
	{"yml", ApplicationYAML},
	{"z", ApplicationCompress},
	{"zip", ApplicationZip},
}
