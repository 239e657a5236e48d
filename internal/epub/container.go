package epub

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Container provides access to the contents of an EPUB container and
// knows where its package document (rootfile) lives.
type Container struct {
	zipReader *zip.ReadCloser
	files     map[string]*zip.File
	rootfile  string
}

// container.xml structure
type containerXML struct {
	Rootfiles struct {
		Rootfile []struct {
			FullPath  string `xml:"full-path,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"rootfile"`
	} `xml:"rootfiles"`
}

var (
	ErrInvalidMimetype    = errors.New("invalid mimetype: must be 'application/epub+zip'")
	ErrMimetypeCompressed = errors.New("mimetype must not be compressed")
	ErrMimetypeNotFound   = errors.New("mimetype file not found")
	ErrContainerNotFound  = errors.New("META-INF/container.xml not found")
	ErrRootfileNotFound   = errors.New("rootfile path not found in container.xml")
)

// Open opens an EPUB container and validates its structure.
func Open(path string) (*Container, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open EPUB: %w", err)
	}

	c := &Container{
		zipReader: zr,
		files:     make(map[string]*zip.File),
	}

	// Build file map with normalized paths
	for _, f := range zr.File {
		c.files[normalizePath(f.Name)] = f
	}

	if err := c.validateMimetype(); err != nil {
		zr.Close()
		return nil, err
	}

	if err := c.parseContainerXML(); err != nil {
		zr.Close()
		return nil, err
	}

	return c, nil
}

// Close closes the container.
func (c *Container) Close() error {
	return c.zipReader.Close()
}

// RootfilePath returns the path of the package document inside the container.
func (c *Container) RootfilePath() string {
	return c.rootfile
}

// Has reports whether the container holds a file at path.
func (c *Container) Has(path string) bool {
	_, ok := c.files[normalizePath(path)]
	return ok
}

// ReadFile reads the contents of a file from the container.
func (c *Container) ReadFile(path string) ([]byte, error) {
	path = normalizePath(path)
	f, ok := c.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// validateMimetype checks that the mimetype file exists and is valid.
func (c *Container) validateMimetype() error {
	f, ok := c.files["mimetype"]
	if !ok {
		return ErrMimetypeNotFound
	}

	// The mimetype entry must be stored uncompressed
	if f.Method != zip.Store {
		return ErrMimetypeCompressed
	}

	content, err := c.ReadFile("mimetype")
	if err != nil {
		return fmt.Errorf("failed to read mimetype: %w", err)
	}

	if string(content) != "application/epub+zip" {
		return ErrInvalidMimetype
	}

	return nil
}

// parseContainerXML parses META-INF/container.xml to find the rootfile path.
func (c *Container) parseContainerXML() error {
	content, err := c.ReadFile("META-INF/container.xml")
	if err != nil {
		return ErrContainerNotFound
	}

	var cx containerXML
	if err := xml.Unmarshal(content, &cx); err != nil {
		return fmt.Errorf("failed to parse container.xml: %w", err)
	}

	for _, rf := range cx.Rootfiles.Rootfile {
		if rf.MediaType == "application/oebps-package+xml" || rf.MediaType == "" {
			c.rootfile = normalizePath(rf.FullPath)
			return nil
		}
	}

	// If no media-type match, use the first one
	if len(cx.Rootfiles.Rootfile) > 0 {
		c.rootfile = normalizePath(cx.Rootfiles.Rootfile[0].FullPath)
		return nil
	}

	return ErrRootfileNotFound
}

// normalizePath normalizes file paths (removes ./ prefix)
func normalizePath(path string) string {
	return strings.TrimPrefix(path, "./")
}
