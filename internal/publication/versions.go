package publication

import (
	"strings"

	"github.com/yuanying/epubmeta/internal/opf"
)

// Title and identifier disambiguation differs between OPF major versions.
// EPUB 3.0 refines titles through meta elements and dates through
// dcterms:modified; EPUB 2.0 uses opf:event attributes on dc:date.
// These helpers encapsulate the version-conditional rules so the metadata
// extractor stays version-agnostic.

// resolveTitle picks the publication title. For EPUB 3.0 the title refined
// as title-type "main" wins; otherwise the first title element is used.
func resolveTitle(meta *opf.Metadata, version float64) string {
	if version >= 3.0 {
		for _, m := range meta.Metas {
			if m.Property != "title-type" || metaValue(m) != "main" {
				continue
			}
			id := strings.TrimPrefix(m.Refines, "#")
			for _, t := range meta.Titles {
				if t.ID != "" && t.ID == id {
					return t.Value
				}
			}
		}
	}
	if len(meta.Titles) > 0 {
		return meta.Titles[0].Value
	}
	return ""
}

// resolveIdentifier picks the unique identifier: the dc:identifier whose id
// matches the package unique-identifier attribute, falling back to the
// first identifier element.
func resolveIdentifier(meta *opf.Metadata, uniqueID string) string {
	if uniqueID != "" {
		for _, id := range meta.Identifiers {
			if id.ID == uniqueID {
				return id.Value
			}
		}
	}
	if len(meta.Identifiers) > 0 {
		return meta.Identifiers[0].Value
	}
	return ""
}

// resolveDate picks the publication date: the first dc:date without an
// event, or the one marked opf:event="publication".
func resolveDate(meta *opf.Metadata) string {
	for _, d := range meta.Dates {
		if d.Event == "" || d.Event == "publication" {
			return d.Value
		}
	}
	return ""
}

// resolveModified picks the modification timestamp. EPUB 3.0 records it as
// <meta property="dcterms:modified">; EPUB 2.0 as dc:date with
// opf:event="modification".
func resolveModified(meta *opf.Metadata, version float64) string {
	if version >= 3.0 {
		for _, m := range meta.Metas {
			if m.Property == "dcterms:modified" {
				return metaValue(m)
			}
		}
		return ""
	}
	for _, d := range meta.Dates {
		if d.Event == "modification" {
			return d.Value
		}
	}
	return ""
}

// metaValue returns the value of a meta element: element text for
// EPUB 3.0, the content attribute for EPUB 2.0.
func metaValue(m opf.Meta) string {
	if v := strings.TrimSpace(m.Value); v != "" {
		return v
	}
	return m.Content
}
