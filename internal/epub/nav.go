package epub

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NavPoint represents a single entry in the table of contents.
type NavPoint struct {
	Label    string
	Path     string // fragment-free path within the EPUB
	Fragment string // fragment identifier (without #)
	Children []NavPoint
}

// LoadNav parses an EPUB 3.0 navigation document into a NavPoint tree.
// basePath is the nav document's own path, used to resolve relative hrefs.
// The toc nav element (epub:type="toc") is preferred; without one the
// first nav element is used.
func LoadNav(content []byte, basePath string) ([]NavPoint, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse nav document: %w", err)
	}

	nav := doc.Find("nav").FilterFunction(func(i int, s *goquery.Selection) bool {
		return s.AttrOr("epub:type", "") == "toc"
	})
	if nav.Length() == 0 {
		nav = doc.Find("nav").First()
	}
	if nav.Length() == 0 {
		return nil, nil
	}

	baseDir := filepath.Dir(basePath)
	return parseNavList(nav.ChildrenFiltered("ol").First(), baseDir), nil
}

// parseNavList walks an ol element into NavPoints, recursing into nested lists.
func parseNavList(list *goquery.Selection, baseDir string) []NavPoint {
	var points []NavPoint

	list.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		point := NavPoint{}

		a := li.ChildrenFiltered("a").First()
		if a.Length() > 0 {
			point.Label = strings.TrimSpace(a.Text())
			if href, ok := a.Attr("href"); ok {
				path, fragment := splitFragment(href)
				point.Path = resolvePath(baseDir, path)
				point.Fragment = fragment
			}
		} else {
			// A span heads a grouping entry without a target.
			point.Label = strings.TrimSpace(li.ChildrenFiltered("span").First().Text())
		}

		if nested := li.ChildrenFiltered("ol").First(); nested.Length() > 0 {
			point.Children = parseNavList(nested, baseDir)
		}

		if point.Label != "" || len(point.Children) > 0 {
			points = append(points, point)
		}
	})

	return points
}

// ncx document structure (EPUB 2.0 table of contents)
type ncxDocument struct {
	XMLName xml.Name  `xml:"ncx"`
	NavMap  ncxNavMap `xml:"navMap"`
}

type ncxNavMap struct {
	NavPoints []ncxNavPoint `xml:"navPoint"`
}

type ncxNavPoint struct {
	Label struct {
		Text string `xml:"text"`
	} `xml:"navLabel"`
	Content struct {
		Src string `xml:"src,attr"`
	} `xml:"content"`
	Children []ncxNavPoint `xml:"navPoint"`
}

// LoadNCX parses an EPUB 2.0 NCX document into a NavPoint tree.
// basePath is the NCX document's own path, used to resolve relative srcs.
func LoadNCX(content []byte, basePath string) ([]NavPoint, error) {
	var doc ncxDocument
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse NCX XML: %w", err)
	}

	baseDir := filepath.Dir(basePath)
	return convertNCXPoints(doc.NavMap.NavPoints, baseDir), nil
}

func convertNCXPoints(points []ncxNavPoint, baseDir string) []NavPoint {
	var result []NavPoint
	for _, p := range points {
		path, fragment := splitFragment(p.Content.Src)
		result = append(result, NavPoint{
			Label:    strings.TrimSpace(p.Label.Text),
			Path:     resolvePath(baseDir, path),
			Fragment: fragment,
			Children: convertNCXPoints(p.Children, baseDir),
		})
	}
	return result
}

// splitFragment splits a source path into the path and fragment identifier.
func splitFragment(src string) (path, fragment string) {
	path, fragment, _ = strings.Cut(src, "#")
	return path, fragment
}

// resolvePath resolves a relative path against a base directory and
// normalizes separators to forward slashes.
func resolvePath(baseDir, relPath string) string {
	if relPath == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(filepath.Join(baseDir, relPath)))
}
