package publication

import (
	"strings"

	"github.com/yuanying/epubmeta/internal/opf"
)

// Manifest property tokens with a dedicated relation mapping. All other
// tokens survive verbatim on Link.Properties.
const (
	propNav        = "nav"
	propCoverImage = "cover-image"

	RelCover    = "cover"
	RelContents = "contents"
)

// extractResources fills pub.Resources from the manifest subtree, one Link
// per item in document order. coverID is the manifest identifier named by
// <meta name="cover">, or "". Items without an identifier cannot be joined
// by the spine resolver later and are skipped with a diagnostic. A link
// that ends up tagged as cover is additionally appended to pub.Links.
func extractResources(doc *opf.Document, pub *Publication, coverID string) {
	items := doc.Manifest.Items
	if len(items) == 0 {
		pub.report(SeverityInfo, StageManifest, "manifest has no items", "")
		return
	}

	for _, item := range items {
		if item.ID == "" {
			pub.report(SeverityWarning, StageManifest, "manifest item has no id, skipping", item.Href)
			continue
		}

		link := Link{
			Href:      item.Href,
			MediaType: item.MediaType,
			ID:        item.ID,
		}

		for _, token := range strings.Fields(item.Properties) {
			switch token {
			case propNav:
				link.addRel(RelContents)
			case propCoverImage:
				link.addRel(RelCover)
			default:
				link.Properties = append(link.Properties, token)
			}
		}

		if coverID != "" && item.ID == coverID {
			link.addRel(RelCover)
		}

		if link.HasRel(RelCover) {
			pub.Links = append(pub.Links, link)
		}
		pub.Resources = append(pub.Resources, link)
	}
}
