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

// wellKnown holds the shared well-known instances in declaration order.
var wellKnown []*MediaType

// wellKnownByName indexes wellKnown by name. Read-only after package init.
var wellKnownByName = make(map[string]*MediaType)

// newWellKnown creates a shared instance. The first declaration of a name wins.
func newWellKnown(name, description string) *MediaType {
	if mt, ok := wellKnownByName[name]; ok {
		return mt
	}
	mt := parse(name, description)
	wellKnown = append(wellKnown, mt)
	wellKnownByName[name] = mt
	return mt
}

// canonical returns the well-known instance for name, or parses it.
func canonical(name string) *MediaType {
	if mt, ok := wellKnownByName[name]; ok {
		return mt
	}
	return Parse(name)
}

// WellKnown returns the well-known media types in declaration order.
func WellKnown() []*MediaType {
	out := make([]*MediaType, len(wellKnown))
	copy(out, wellKnown)
	return out
}

// Ranges.
var (
	All                = newWellKnown("*/*", "All media")
	ApplicationAll     = newWellKnown("application/*", "All application documents")
	ApplicationAllJSON = newWellKnown("application/*+json", "All application/*+json documents")
	ApplicationAllXML  = newWellKnown("application/*+xml", "All application/*+xml documents")
	AudioAll           = newWellKnown("audio/*", "All audios")
	ImageAll           = newWellKnown("image/*", "All images")
	MessageAll         = newWellKnown("message/*", "All messages")
	ModelAll           = newWellKnown("model/*", "All models")
	MultipartAll       = newWellKnown("multipart/*", "All multipart data")
	TextAll            = newWellKnown("text/*", "All texts")
	VideoAll           = newWellKnown("video/*", "All videos")
)

// Application types.
var (
	ApplicationAtom             = newWellKnown("application/atom+xml", "Atom document")
	ApplicationAtomPubCategory  = newWellKnown("application/atomcat+xml", "Atom category document")
	ApplicationAtomPubService   = newWellKnown("application/atomsvc+xml", "Atom service document")
	ApplicationCompress         = newWellKnown("application/x-compress", "Compressed file")
	ApplicationExcel            = newWellKnown("application/vnd.ms-excel", "Microsoft Excel document")
	ApplicationGnuTar           = newWellKnown("application/x-gtar", "GNU Tar archive")
	ApplicationGnuZip           = newWellKnown("application/x-gzip", "GNU Zip archive")
	ApplicationJavaArchive      = newWellKnown("application/java-archive", "Java archive")
	ApplicationJavaScript       = newWellKnown("application/javascript", "JavaScript document")
	ApplicationJSON             = newWellKnown("application/json", "JavaScript Object Notation document")
	ApplicationJSONActivity     = newWellKnown("application/activity+json", "Activity Streams JSON document")
	ApplicationJSONPatch        = newWellKnown("application/json-patch+json", "JSON patch document")
	ApplicationMergePatch       = newWellKnown("application/merge-patch+json", "JSON merge patch document")
	ApplicationMsgPack          = newWellKnown("application/vnd.msgpack", "MessagePack document")
	ApplicationXMsgPack         = newWellKnown("application/x-msgpack", "MessagePack document")
	ApplicationProblemJSON      = newWellKnown("application/problem+json", "Problem details JSON document")
	ApplicationLatex            = newWellKnown("application/x-latex", "LaTeX")
	ApplicationMathML           = newWellKnown("application/mathml+xml", "MathML XML document")
	ApplicationOctetStream      = newWellKnown("application/octet-stream", "Raw octet stream")
	ApplicationPDF              = newWellKnown("application/pdf", "Adobe PDF document")
	ApplicationPostscript       = newWellKnown("application/postscript", "Postscript document")
	ApplicationPowerpoint       = newWellKnown("application/vnd.ms-powerpoint", "Microsoft Powerpoint document")
	ApplicationRDFXML           = newWellKnown("application/rdf+xml", "Normalized XML serialized Resource Description Framework document")
	ApplicationRSS              = newWellKnown("application/rss+xml", "Really Simple Syndication document")
	ApplicationRTF              = newWellKnown("application/rtf", "Rich Text Format document")
	ApplicationSPARQLResultsXML = newWellKnown("application/sparql-results+xml", "SPARQL Query Results XML document")
	ApplicationTar              = newWellKnown("application/x-tar", "Tar archive")
	ApplicationTOML             = newWellKnown("application/toml", "TOML document")
	ApplicationWADL             = newWellKnown("application/vnd.sun.wadl+xml", "Web Application Description Language document")
	ApplicationWord             = newWellKnown("application/msword", "Microsoft Word document")
	ApplicationWWWForm          = newWellKnown("application/x-www-form-urlencoded", "Web form (URL encoded)")
	ApplicationXHTML            = newWellKnown("application/xhtml+xml", "XHTML document")
	ApplicationXML              = newWellKnown("application/xml", "XML document")
	ApplicationXMLDTD           = newWellKnown("application/xml-dtd", "XML DTD")
	ApplicationXSD              = newWellKnown("application/x-xsd+xml", "W3C XML Schema document")
	ApplicationXSLT             = newWellKnown("application/xslt+xml", "W3C XSLT Stylesheet")
	ApplicationYAML             = newWellKnown("application/yaml", "YAML document")
	ApplicationXYAML            = newWellKnown("application/x-yaml", "YAML document")
	ApplicationZip              = newWellKnown("application/zip", "Zip archive")
)

// Audio, image, message, model and multipart types.
var (
	AudioBasic = newWellKnown("audio/basic", "AU audio")
	AudioMIDI  = newWellKnown("audio/midi", "MIDI audio")
	AudioMPEG  = newWellKnown("audio/mpeg", "MPEG audio (MP3)")
	AudioOGG   = newWellKnown("audio/ogg", "Ogg audio")
	AudioWAV   = newWellKnown("audio/x-wav", "Waveform audio")

	ImageBMP  = newWellKnown("image/bmp", "Windows bitmap")
	ImageGIF  = newWellKnown("image/gif", "GIF image")
	ImageIcon = newWellKnown("image/x-icon", "Windows icon (Favicon)")
	ImageJPEG = newWellKnown("image/jpeg", "JPEG image")
	ImagePNG  = newWellKnown("image/png", "PNG image")
	ImageSVG  = newWellKnown("image/svg+xml", "Scalable Vector Graphics")
	ImageTIFF = newWellKnown("image/tiff", "TIFF image")
	ImageWebP = newWellKnown("image/webp", "WebP image")

	MessageHTTP = newWellKnown("message/http", "HTTP message")

	ModelVRML = newWellKnown("model/vrml", "VRML")

	MultipartMixed    = newWellKnown("multipart/mixed", "Multipart mixed")
	MultipartFormData = newWellKnown("multipart/form-data", "Multipart form data")
)

// Text and video types.
var (
	TextCalendar   = newWellKnown("text/calendar", "iCalendar event")
	TextCSS        = newWellKnown("text/css", "CSS stylesheet")
	TextCSV        = newWellKnown("text/csv", "Comma-separated Values")
	TextHTML       = newWellKnown("text/html", "HTML document")
	TextJavaScript = newWellKnown("text/javascript", "JavaScript document")
	TextMarkdown   = newWellKnown("text/markdown", "Markdown document")
	TextPlain      = newWellKnown("text/plain", "Plain text")
	TextRDFN3      = newWellKnown("text/n3", "N3 serialized Resource Description Framework document")
	TextTSV        = newWellKnown("text/tab-separated-values", "Tab-separated Values")
	TextTurtle     = newWellKnown("text/turtle", "Plain text serialized Resource Description Framework document")
	TextURIList    = newWellKnown("text/uri-list", "List of URIs")
	TextVCard      = newWellKnown("text/x-vcard", "vCard")
	TextXML        = newWellKnown("text/xml", "XML text")
	TextYAML       = newWellKnown("text/yaml", "YAML document")

	VideoAVI       = newWellKnown("video/x-msvideo", "AVI video")
	VideoMP4       = newWellKnown("video/mp4", "MPEG-4 video")
	VideoMPEG      = newWellKnown("video/mpeg", "MPEG video")
	VideoQuicktime = newWellKnown("video/quicktime", "Quicktime video")
	VideoWebM      = newWellKnown("video/webm", "WebM video")
	VideoWMV       = newWellKnown("video/x-ms-wmv", "Windows movie")
)
