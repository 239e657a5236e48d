package opf

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Document represents the parsed OPF package document tree.
type Document struct {
	XMLName          xml.Name `xml:"package"`
	Version          string   `xml:"version,attr"`
	UniqueIdentifier string   `xml:"unique-identifier,attr"`
	Metadata         Metadata `xml:"metadata"`
	Manifest         Manifest `xml:"manifest"`
	Spine            Spine    `xml:"spine"`
	Guide            Guide    `xml:"guide"`
}

// Metadata represents the metadata section. Dublin Core elements are
// matched by namespace so that both prefixed and default-namespace
// documents decode.
type Metadata struct {
	Titles       []Title      `xml:"http://purl.org/dc/elements/1.1/ title"`
	Identifiers  []Identifier `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Languages    []string     `xml:"http://purl.org/dc/elements/1.1/ language"`
	Creators     []Author     `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Contributors []Author     `xml:"http://purl.org/dc/elements/1.1/ contributor"`
	Publishers   []string     `xml:"http://purl.org/dc/elements/1.1/ publisher"`
	Dates        []Date       `xml:"http://purl.org/dc/elements/1.1/ date"`
	Descriptions []string     `xml:"http://purl.org/dc/elements/1.1/ description"`
	Sources      []string     `xml:"http://purl.org/dc/elements/1.1/ source"`
	Subjects     []string     `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Rights       []string     `xml:"http://purl.org/dc/elements/1.1/ rights"`
	Metas        []Meta       `xml:"meta"`
}

// Title represents a dc:title element.
type Title struct {
	Value string `xml:",chardata"`
	ID    string `xml:"id,attr"`
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
}

// Identifier represents a dc:identifier element.
type Identifier struct {
	Value  string `xml:",chardata"`
	ID     string `xml:"id,attr"`
	Scheme string `xml:"http://www.idpf.org/2007/opf scheme,attr"`
}

// Author represents a dc:creator or dc:contributor element.
type Author struct {
	Value  string `xml:",chardata"`
	ID     string `xml:"id,attr"`
	Role   string `xml:"http://www.idpf.org/2007/opf role,attr"`
	FileAs string `xml:"http://www.idpf.org/2007/opf file-as,attr"`
	Lang   string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
}

// Date represents a dc:date element. Event is the EPUB 2.0
// opf:event attribute (e.g. "publication", "modification").
type Date struct {
	Value string `xml:",chardata"`
	Event string `xml:"http://www.idpf.org/2007/opf event,attr"`
}

// Meta represents a meta element (EPUB 2.0 and 3.0)
type Meta struct {
	Name     string `xml:"name,attr"`
	Content  string `xml:"content,attr"` // EPUB 2.0: attribute value
	Value    string `xml:",chardata"`    // EPUB 3.0: element text content
	Property string `xml:"property,attr"`
	Refines  string `xml:"refines,attr"`
	Scheme   string `xml:"scheme,attr"`
}

// Manifest represents the manifest section
type Manifest struct {
	Items []Item `xml:"item"`
}

// Item represents an item in the manifest
type Item struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

// Spine represents the spine section
type Spine struct {
	Toc             string    `xml:"toc,attr"`
	PageProgression string    `xml:"page-progression-direction,attr"`
	Itemrefs        []Itemref `xml:"itemref"`
}

// Itemref represents an itemref in the spine
type Itemref struct {
	IDref  string `xml:"idref,attr"`
	Linear string `xml:"linear,attr"`
}

// Guide represents the legacy guide section (EPUB 2.0)
type Guide struct {
	References []Reference `xml:"reference"`
}

// Reference represents a reference in the guide
type Reference struct {
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
	Href  string `xml:"href,attr"`
}

// Parse decodes OPF package document content into a Document tree.
// A document that cannot be decoded yields an error; recovery from a
// broken tree is the one failure the extraction pipeline does not handle.
func Parse(content []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OPF XML: %w", err)
	}
	return &doc, nil
}

// FormatVersion returns the numeric format version from the package
// version attribute ("3.0" -> 3.0). An absent or unparsable attribute
// yields 2.0, the oldest format this tool understands.
func (d *Document) FormatVersion() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(d.Version), 64)
	if err != nil {
		return 2.0
	}
	return v
}

// CoverID returns the manifest identifier named by the first
// <meta name="cover"> element, or "" when none exists.
func (d *Document) CoverID() string {
	for _, m := range d.Metadata.Metas {
		if m.Name == "cover" && m.Content != "" {
			return m.Content
		}
	}
	return ""
}
