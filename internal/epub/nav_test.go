package epub

import (
	"testing"
)

func TestLoadNav(t *testing.T) {
	content := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>Contents</title></head>
<body>
  <nav epub:type="toc">
    <h1>Table of Contents</h1>
    <ol>
      <li><a href="text/ch1.xhtml">Chapter 1</a></li>
      <li><a href="text/ch2.xhtml#s1">Chapter 2</a>
        <ol>
          <li><a href="text/ch2.xhtml#s2">Section 2.1</a></li>
        </ol>
      </li>
    </ol>
  </nav>
</body>
</html>`)

	points, err := LoadNav(content, "OEBPS/nav.xhtml")
	if err != nil {
		t.Fatalf("LoadNav failed: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("points count = %d, want 2", len(points))
	}

	if points[0].Label != "Chapter 1" {
		t.Errorf("points[0].Label = %q, want %q", points[0].Label, "Chapter 1")
	}
	if points[0].Path != "OEBPS/text/ch1.xhtml" {
		t.Errorf("points[0].Path = %q, want %q", points[0].Path, "OEBPS/text/ch1.xhtml")
	}
	if points[0].Fragment != "" {
		t.Errorf("points[0].Fragment = %q, want empty", points[0].Fragment)
	}

	if points[1].Fragment != "s1" {
		t.Errorf("points[1].Fragment = %q, want %q", points[1].Fragment, "s1")
	}
	if len(points[1].Children) != 1 {
		t.Fatalf("points[1].Children count = %d, want 1", len(points[1].Children))
	}
	child := points[1].Children[0]
	if child.Label != "Section 2.1" || child.Fragment != "s2" {
		t.Errorf("child = %+v, want Section 2.1 at #s2", child)
	}
}

func TestLoadNav_PrefersTocNav(t *testing.T) {
	content := []byte(`<html xmlns:epub="http://www.idpf.org/2007/ops">
<body>
  <nav epub:type="landmarks">
    <ol><li><a href="cover.xhtml">Cover</a></li></ol>
  </nav>
  <nav epub:type="toc">
    <ol><li><a href="ch1.xhtml">Chapter 1</a></li></ol>
  </nav>
</body>
</html>`)

	points, err := LoadNav(content, "nav.xhtml")
	if err != nil {
		t.Fatalf("LoadNav failed: %v", err)
	}
	if len(points) != 1 || points[0].Label != "Chapter 1" {
		t.Errorf("points = %+v, want the toc nav's Chapter 1", points)
	}
}

func TestLoadNav_GroupingEntryWithoutTarget(t *testing.T) {
	content := []byte(`<html xmlns:epub="http://www.idpf.org/2007/ops">
<body>
  <nav epub:type="toc">
    <ol>
      <li><span>Part One</span>
        <ol>
          <li><a href="ch1.xhtml">Chapter 1</a></li>
        </ol>
      </li>
    </ol>
  </nav>
</body>
</html>`)

	points, err := LoadNav(content, "nav.xhtml")
	if err != nil {
		t.Fatalf("LoadNav failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("points count = %d, want 1", len(points))
	}
	if points[0].Label != "Part One" || points[0].Path != "" {
		t.Errorf("points[0] = %+v, want untargeted Part One", points[0])
	}
	if len(points[0].Children) != 1 {
		t.Errorf("children count = %d, want 1", len(points[0].Children))
	}
}

func TestLoadNav_NoNavElement(t *testing.T) {
	points, err := LoadNav([]byte(`<html><body><p>nothing here</p></body></html>`), "nav.xhtml")
	if err != nil {
		t.Fatalf("LoadNav failed: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("points = %+v, want empty", points)
	}
}

func TestLoadNCX(t *testing.T) {
	content := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head/>
  <docTitle><text>Test Book</text></docTitle>
  <navMap>
    <navPoint id="np1" playOrder="1">
      <navLabel><text>Chapter 1</text></navLabel>
      <content src="text/ch1.xhtml"/>
      <navPoint id="np1-1" playOrder="2">
        <navLabel><text>Section 1.1</text></navLabel>
        <content src="text/ch1.xhtml#s1"/>
      </navPoint>
    </navPoint>
    <navPoint id="np2" playOrder="3">
      <navLabel><text>Chapter 2</text></navLabel>
      <content src="text/ch2.xhtml"/>
    </navPoint>
  </navMap>
</ncx>`)

	points, err := LoadNCX(content, "OEBPS/toc.ncx")
	if err != nil {
		t.Fatalf("LoadNCX failed: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("points count = %d, want 2", len(points))
	}
	if points[0].Label != "Chapter 1" || points[0].Path != "OEBPS/text/ch1.xhtml" {
		t.Errorf("points[0] = %+v, want Chapter 1 at OEBPS/text/ch1.xhtml", points[0])
	}
	if len(points[0].Children) != 1 {
		t.Fatalf("points[0].Children count = %d, want 1", len(points[0].Children))
	}
	if points[0].Children[0].Fragment != "s1" {
		t.Errorf("child Fragment = %q, want %q", points[0].Children[0].Fragment, "s1")
	}
}

func TestLoadNCX_InvalidXML(t *testing.T) {
	_, err := LoadNCX([]byte(`<ncx><navMap>`), "toc.ncx")
	if err == nil {
		t.Fatal("LoadNCX succeeded on truncated XML, want error")
	}
}

func TestSplitFragment(t *testing.T) {
	tests := []struct {
		name         string
		src          string
		wantPath     string
		wantFragment string
	}{
		{name: "path only", src: "ch1.xhtml", wantPath: "ch1.xhtml", wantFragment: ""},
		{name: "path and fragment", src: "ch1.xhtml#top", wantPath: "ch1.xhtml", wantFragment: "top"},
		{name: "empty", src: "", wantPath: "", wantFragment: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, fragment := splitFragment(tt.src)
			if path != tt.wantPath || fragment != tt.wantFragment {
				t.Errorf("splitFragment(%q) = (%q, %q), want (%q, %q)",
					tt.src, path, fragment, tt.wantPath, tt.wantFragment)
			}
		})
	}
}
