package publication

import (
	"errors"

	"github.com/yuanying/epubmeta/internal/opf"
)

// ErrNoDocument is returned when Extract is handed no document tree.
var ErrNoDocument = errors.New("no OPF document to extract from")

// Container describes where the package document lives inside its
// container. epub.Container satisfies it.
type Container interface {
	RootfilePath() string
}

// Extract runs the extraction pipeline against a parsed OPF document:
// metadata, then manifest resources, then spine resolution. Resource
// extraction must precede spine resolution because the resolver joins
// spine itemrefs against the extracted resources.
//
// The transform is pure and deterministic. Malformed or incomplete
// subtrees degrade to a sparse Publication plus diagnostics; the only
// error is a document tree that cannot be traversed at all.
func Extract(doc *opf.Document, container Container, version float64) (*Publication, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}

	pub := &Publication{Version: version}
	if container != nil {
		pub.Source.RootfilePath = container.RootfilePath()
	}

	extractMetadata(doc, pub)
	extractResources(doc, pub, doc.CoverID())
	resolveSpine(doc, pub)

	return pub, nil
}
