package publication

// Publication is the normalized in-memory model extracted from an OPF
// package document. It is built once by Extract and not mutated afterwards.
type Publication struct {
	// Version is the numeric OPF format version (2.0, 3.0, ...).
	Version float64 `json:"version" yaml:"version"`
	// Source records where the package document came from.
	Source Source `json:"source" yaml:"source"`

	Metadata Metadata `json:"metadata" yaml:"metadata"`

	// Links holds publication-level links such as the cover. A cover
	// resource appears both here and in its home list.
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`
	// Resources holds manifest resources that are not part of the
	// linear reading order.
	Resources []Link `json:"resources,omitempty" yaml:"resources,omitempty"`
	// Spine holds the resources that form the linear reading order,
	// in spine document order.
	Spine []Link `json:"spine,omitempty" yaml:"spine,omitempty"`

	// Diagnostics collects the non-fatal problems encountered while
	// extracting. Callers decide whether and how to surface them.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Source identifies the origin of the package document within its container.
type Source struct {
	RootfilePath string `json:"rootfilePath,omitempty" yaml:"rootfilePath,omitempty"`
}

// Metadata holds the flat metadata record of the publication. Every field
// except Title and Identifier is optional; an empty value means the source
// document did not carry it.
type Metadata struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Identifier  string `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Modified    string `json:"modified,omitempty" yaml:"modified,omitempty"`
	Source      string `json:"sourceIdentifier,omitempty" yaml:"sourceIdentifier,omitempty"`
	Rights      string `json:"rights,omitempty" yaml:"rights,omitempty"`

	Subjects  []string `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`

	Authors      []Contributor `json:"authors,omitempty" yaml:"authors,omitempty"`
	Editors      []Contributor `json:"editors,omitempty" yaml:"editors,omitempty"`
	Translators  []Contributor `json:"translators,omitempty" yaml:"translators,omitempty"`
	Publishers   []Contributor `json:"publishers,omitempty" yaml:"publishers,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty" yaml:"contributors,omitempty"`

	// Direction is the reading progression direction from the spine's
	// page-progression-direction attribute ("ltr", "rtl" or "").
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	// Rendition holds rendition:* metadata as opaque property strings.
	Rendition []string `json:"rendition,omitempty" yaml:"rendition,omitempty"`
}

// Contributor represents a person or organization credited in the metadata.
type Contributor struct {
	Name   string `json:"name" yaml:"name"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
	FileAs string `json:"fileAs,omitempty" yaml:"fileAs,omitempty"`
}

// Link represents a single publication resource.
type Link struct {
	Href      string `json:"href" yaml:"href"`
	MediaType string `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	// ID is the manifest identifier of the resource. It is informational:
	// spine resolution joins through its own index and clears the field on
	// every link placed into the spine.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Rel holds relation tags such as "cover" or "contents".
	Rel []string `json:"rel,omitempty" yaml:"rel,omitempty"`
	// Properties holds manifest property tokens not mapped to a relation.
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// HasRel reports whether the link carries the given relation tag.
func (l Link) HasRel(rel string) bool {
	for _, r := range l.Rel {
		if r == rel {
			return true
		}
	}
	return false
}

// addRel appends a relation tag unless it is already present.
func (l *Link) addRel(rel string) {
	if !l.HasRel(rel) {
		l.Rel = append(l.Rel, rel)
	}
}
