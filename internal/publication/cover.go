package publication

// FindCover returns the publication's cover link. The resource extractor
// appends every cover-tagged resource to pub.Links, so the first cover
// relation there matches the manifest's document order.
func FindCover(pub *Publication) (Link, bool) {
	for _, link := range pub.Links {
		if link.HasRel(RelCover) {
			return link, true
		}
	}
	return Link{}, false
}

// FindRel returns the first link with the given relation tag, searching the
// spine first (reading order), then the remaining resources.
func FindRel(pub *Publication, rel string) (Link, bool) {
	for _, link := range pub.Spine {
		if link.HasRel(rel) {
			return link, true
		}
	}
	for _, link := range pub.Resources {
		if link.HasRel(rel) {
			return link, true
		}
	}
	return Link{}, false
}

// FindMediaType returns the first resource with the given media type, in
// manifest document order.
func FindMediaType(pub *Publication, mediaType string) (Link, bool) {
	for _, link := range pub.Resources {
		if link.MediaType == mediaType {
			return link, true
		}
	}
	for _, link := range pub.Spine {
		if link.MediaType == mediaType {
			return link, true
		}
	}
	return Link{}, false
}
