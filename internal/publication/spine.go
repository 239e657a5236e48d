package publication

import (
	"strings"

	"github.com/yuanying/epubmeta/internal/opf"
)

// resolveSpine builds pub.Spine from the spine subtree and shrinks
// pub.Resources correspondingly. Itemrefs are visited in document order;
// entries without an idref or marked linear="no" (case-insensitive) never
// enter the spine. Each idref resolves against the first resource carrying
// that identifier in manifest order; the match moves from Resources to
// Spine with its informational ID cleared. An idref that matches nothing
// is skipped with a diagnostic.
func resolveSpine(doc *opf.Document, pub *Publication) {
	// First-occurrence join index. Duplicate manifest identifiers make the
	// join ambiguous; first match wins and the duplicate is reported.
	byID := make(map[string]int, len(pub.Resources))
	for i, res := range pub.Resources {
		if _, ok := byID[res.ID]; ok {
			pub.report(SeverityWarning, StageManifest, "duplicate manifest identifier", res.ID)
			continue
		}
		byID[res.ID] = i
	}

	taken := make([]bool, len(pub.Resources))

	for _, itemref := range doc.Spine.Itemrefs {
		// Hard filter: entries without an idref and non-linear entries never
		// enter the spine and are not worth a diagnostic.
		if itemref.IDref == "" || strings.EqualFold(itemref.Linear, "no") {
			continue
		}

		idx, ok := byID[itemref.IDref]
		if !ok {
			pub.report(SeverityWarning, StageSpine, "itemref references unknown manifest item", itemref.IDref)
			continue
		}
		// A resource enters the spine at most once.
		delete(byID, itemref.IDref)
		taken[idx] = true

		link := pub.Resources[idx]
		link.ID = ""
		pub.Spine = append(pub.Spine, link)
	}

	if len(pub.Spine) == 0 {
		return
	}

	// Rebuild the resource list from the entries the spine did not claim
	// rather than removing matches mid-iteration.
	remaining := make([]Link, 0, len(pub.Resources)-len(pub.Spine))
	for i, res := range pub.Resources {
		if !taken[i] {
			remaining = append(remaining, res)
		}
	}
	pub.Resources = remaining
}
