package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yuanying/epubmeta/internal/epub"
	"github.com/yuanying/epubmeta/internal/opf"
	"github.com/yuanying/epubmeta/internal/publication"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "epubmeta",
		Short: "Inspect EPUB package metadata and structure",
		Long: `epubmeta extracts the package document of an EPUB file into a
normalized publication model: metadata, manifest resources and the
linear reading order (spine).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInfoCmd(), newTocCmd(), newCoverCmd())
	return rootCmd
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info BOOK.epub",
		Short: "Print the extracted publication model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			showDiags, _ := cmd.Flags().GetBool("diagnostics")

			pub, container, err := extractPublication(args[0])
			if err != nil {
				return err
			}
			defer container.Close()

			if showDiags {
				for _, d := range pub.Diagnostics {
					log.Printf("warning: %s", d)
				}
			}

			return writePublication(cmd.OutOrStdout(), pub, format)
		},
	}

	cmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	cmd.Flags().Bool("diagnostics", false, "Log extraction diagnostics to stderr")
	return cmd
}

func newTocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toc BOOK.epub",
		Short: "Print the table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, container, err := extractPublication(args[0])
			if err != nil {
				return err
			}
			defer container.Close()

			points, err := loadTOC(pub, container)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				return fmt.Errorf("no table of contents found")
			}

			printNavPoints(cmd.OutOrStdout(), points, 0)
			return nil
		},
	}
}

func newCoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover BOOK.epub",
		Short: "Extract the cover image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, _ := cmd.Flags().GetString("output")
			width, _ := cmd.Flags().GetInt("width")

			pub, container, err := extractPublication(args[0])
			if err != nil {
				return err
			}
			defer container.Close()

			cover, ok := publication.FindCover(pub)
			if !ok {
				return fmt.Errorf("no cover image found")
			}

			href := resolveHref(pub.Source.RootfilePath, cover.Href)
			data, err := container.ReadFile(href)
			if err != nil {
				return fmt.Errorf("failed to read cover %q: %w", href, err)
			}

			if outputPath == "" {
				outputPath = "cover" + path.Ext(cover.Href)
			}

			if err := writeCover(outputPath, data, width); err != nil {
				return err
			}

			log.Printf("Wrote: %s", outputPath)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: cover with source extension)")
	cmd.Flags().Int("width", 0, "Downscale the cover to this width in pixels")
	return cmd
}

// extractPublication opens the container, parses its package document and
// runs the extraction pipeline. The caller owns the returned container.
func extractPublication(inputPath string) (*publication.Publication, *epub.Container, error) {
	container, err := epub.Open(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open EPUB: %w", err)
	}

	content, err := container.ReadFile(container.RootfilePath())
	if err != nil {
		container.Close()
		return nil, nil, fmt.Errorf("failed to read package document: %w", err)
	}

	doc, err := opf.Parse(content)
	if err != nil {
		container.Close()
		return nil, nil, err
	}

	pub, err := publication.Extract(doc, container, doc.FormatVersion())
	if err != nil {
		container.Close()
		return nil, nil, err
	}

	return pub, container, nil
}

// writePublication encodes the publication model as json or yaml.
func writePublication(w io.Writer, pub *publication.Publication, format string) error {
	var out []byte
	var err error

	switch format {
	case "json":
		out, err = json.MarshalIndent(pub, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(pub)
	default:
		return fmt.Errorf("unknown format %q for --format (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode publication: %w", err)
	}

	fmt.Fprintln(w, strings.TrimRight(string(out), "\n"))
	return nil
}

// writeCover writes the cover image, downscaling to width pixels when set.
func writeCover(outputPath string, data []byte, width int) error {
	if width <= 0 {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write cover image: %w", err)
		}
		return nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode cover image: %w", err)
	}
	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	if err := imaging.Save(img, outputPath); err != nil {
		return fmt.Errorf("failed to save cover image: %w", err)
	}
	return nil
}

// loadTOC loads the table of contents: the EPUB 3.0 nav document when a
// contents link exists, otherwise the EPUB 2.0 NCX document.
func loadTOC(pub *publication.Publication, container *epub.Container) ([]epub.NavPoint, error) {
	if link, ok := publication.FindRel(pub, publication.RelContents); ok {
		navPath := resolveHref(pub.Source.RootfilePath, link.Href)
		content, err := container.ReadFile(navPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read nav document %q: %w", navPath, err)
		}
		return epub.LoadNav(content, navPath)
	}

	if link, ok := publication.FindMediaType(pub, "application/x-dtbncx+xml"); ok {
		ncxPath := resolveHref(pub.Source.RootfilePath, link.Href)
		content, err := container.ReadFile(ncxPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read NCX %q: %w", ncxPath, err)
		}
		return epub.LoadNCX(content, ncxPath)
	}

	return nil, nil
}

// resolveHref resolves a manifest href against the package document's
// directory inside the container.
func resolveHref(rootfilePath, href string) string {
	dir := path.Dir(rootfilePath)
	if dir == "." || dir == "" {
		return href
	}
	return path.Join(dir, href)
}

func printNavPoints(w io.Writer, points []epub.NavPoint, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, p := range points {
		target := p.Path
		if p.Fragment != "" {
			target += "#" + p.Fragment
		}
		fmt.Fprintf(w, "%s%s\t%s\n", indent, p.Label, target)
		printNavPoints(w, p.Children, depth+1)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
