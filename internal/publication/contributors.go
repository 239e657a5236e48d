package publication

import (
	"strings"

	"github.com/yuanying/epubmeta/internal/opf"
)

// MARC relator codes routed to dedicated contributor lists. Everything
// else lands in Metadata.Contributors with its role preserved.
const (
	roleAuthor     = "aut"
	roleEditor     = "edt"
	roleTranslator = "trl"
	rolePublisher  = "pbl"
)

// extractContributors populates the contributor lists from dc:creator,
// dc:contributor and dc:publisher elements, resolving EPUB 3.0 role
// refinements first.
func extractContributors(meta *opf.Metadata, md *Metadata) {
	roles := refinedRoles(meta)

	for _, c := range meta.Creators {
		// A creator without an explicit role is an author.
		addContributor(md, toContributor(c, roles), roleAuthor)
	}
	for _, c := range meta.Contributors {
		addContributor(md, toContributor(c, roles), "")
	}
	for _, p := range meta.Publishers {
		md.Publishers = append(md.Publishers, Contributor{Name: p})
	}
}

// refinedRoles builds a map from element id to role for EPUB 3.0
// <meta refines="#id" property="role"> elements.
func refinedRoles(meta *opf.Metadata) map[string]string {
	roles := make(map[string]string)
	for _, m := range meta.Metas {
		if m.Property != "role" || m.Refines == "" {
			continue
		}
		id := strings.TrimPrefix(m.Refines, "#")
		if _, ok := roles[id]; !ok {
			roles[id] = metaValue(m)
		}
	}
	return roles
}

func toContributor(a opf.Author, roles map[string]string) Contributor {
	role := a.Role
	if a.ID != "" {
		if refined, ok := roles[a.ID]; ok && refined != "" {
			role = refined
		}
	}
	return Contributor{
		Name:   a.Value,
		Role:   role,
		FileAs: a.FileAs,
	}
}

// addContributor routes a contributor to the list matching its role.
// defaultRole applies when the element carries no role of its own.
func addContributor(md *Metadata, c Contributor, defaultRole string) {
	role := c.Role
	if role == "" {
		role = defaultRole
	}
	switch role {
	case roleAuthor:
		md.Authors = append(md.Authors, c)
	case roleEditor:
		md.Editors = append(md.Editors, c)
	case roleTranslator:
		md.Translators = append(md.Translators, c)
	case rolePublisher:
		md.Publishers = append(md.Publishers, c)
	default:
		md.Contributors = append(md.Contributors, c)
	}
}
