package publication

import (
	"strings"

	"github.com/yuanying/epubmeta/internal/opf"
)

// extractMetadata fills pub.Metadata from the metadata subtree. Every field
// is independently optional: a missing element leaves its field empty and
// never fails. The reading direction comes from the spine element, not the
// metadata subtree, and is merged in here.
func extractMetadata(doc *opf.Document, pub *Publication) {
	meta := &doc.Metadata
	md := &pub.Metadata

	md.Title = resolveTitle(meta, pub.Version)
	md.Identifier = resolveIdentifier(meta, doc.UniqueIdentifier)
	if md.Title == "" {
		pub.report(SeverityInfo, StageMetadata, "no title element", "")
	}
	if md.Identifier == "" {
		pub.report(SeverityInfo, StageMetadata, "no identifier element", "")
	}

	md.Date = resolveDate(meta)
	md.Modified = resolveModified(meta, pub.Version)

	if len(meta.Descriptions) > 0 {
		md.Description = meta.Descriptions[0]
	}
	if len(meta.Sources) > 0 {
		md.Source = meta.Sources[0]
	}

	// All languages, document order.
	md.Languages = append(md.Languages, meta.Languages...)
	md.Subjects = append(md.Subjects, meta.Subjects...)

	// Multiple rights statements collapse into one space-separated string.
	if len(meta.Rights) > 0 {
		md.Rights = strings.Join(meta.Rights, " ")
	}

	extractContributors(meta, md)

	// Rendition hints stay opaque; downstream layout code interprets them.
	for _, m := range meta.Metas {
		if strings.HasPrefix(m.Property, "rendition:") {
			md.Rendition = append(md.Rendition, m.Property+"="+metaValue(m))
		}
	}

	md.Direction = doc.Spine.PageProgression
}
