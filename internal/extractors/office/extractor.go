// Package office extracts plain text from word-processor and web documents
// without external tools. DOCX files are read as ZIP archives and the text
// runs of word/document.xml are joined paragraph by paragraph; HTML files
// are stripped of markup with entities decoded. Certificates exported from
// office suites or saved from certification portals scan through this
// extractor directly.
package office

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor converts DOCX and HTML documents to plain text.
type Extractor struct{}

// New creates an office document extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".docx", ".html", ".htm"}
}

// Extract produces the document text for the file at path.
func (e *Extractor) Extract(_ context.Context, path string) (*driven.ExtractResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		text, err = docxText(data)
	case ".html", ".htm":
		text = htmlText(string(data))
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedType)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyDocument)
	}
	return &driven.ExtractResult{Text: text}, nil
}

// docxText pulls the text runs out of word/document.xml inside the DOCX
// archive, one line per paragraph.
func docxText(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a docx archive", domain.ErrExtractionFailed)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: opening document.xml", domain.ErrExtractionFailed)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: reading document.xml", domain.ErrExtractionFailed)
		}
		return paragraphText(content)
	}
	return "", fmt.Errorf("%w: document.xml missing", domain.ErrExtractionFailed)
}

// documentXML mirrors the parts of word/document.xml we read.
type documentXML struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text []struct {
					Content string `xml:",chardata"`
				} `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

func paragraphText(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("%w: malformed document.xml", domain.ErrExtractionFailed)
	}

	var b strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, t := range run.Text {
				b.WriteString(t.Content)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

var (
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	headTag       = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockBoundary = regexp.MustCompile(`(?i)</?(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*/?>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
)

// htmlText strips markup from an HTML document, keeping block boundaries as
// line breaks so label/value layouts survive.
func htmlText(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = headTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")
	content = blockBoundary.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
