// Package document converts uploaded resume files to bounded plain text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/spigell/skillgap/internal/utils"
)

const (
	DefaultMaxChars = 20000
	DefaultMaxPages = 5
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

	xmlTags    = regexp.MustCompile(`<[^>]+>`)
	spaceRuns  = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

type Config struct {
	MaxChars int `mapstructure:"max-chars" validate:"gte=0"`
	MaxPages int `mapstructure:"max-pages" validate:"gte=0"`
}

// Document is the extracted text of one file.
type Document struct {
	Name      string `json:"name"`
	Text      string `json:"-"`
	Pages     int    `json:"pages,omitempty"`
	Truncated bool   `json:"truncated"`
}

type Extractor struct {
	maxChars int
	maxPages int
}

func NewExtractor(cfg Config) *Extractor {
	e := &Extractor{maxChars: cfg.MaxChars, maxPages: cfg.MaxPages}
	if e.maxChars <= 0 {
		e.maxChars = DefaultMaxChars
	}
	if e.maxPages <= 0 {
		e.maxPages = DefaultMaxPages
	}
	return e
}

// Extract picks a decoder by file extension. Only the first max-pages PDF pages are read and
// the text is cut to max-chars runes.
func (e *Extractor) Extract(name string, data []byte) (Document, error) {
	doc := Document{Name: filepath.Base(name)}

	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		text, doc.Pages, doc.Truncated, err = e.pdfText(data)
	case ".docx":
		text, err = docxText(data)
	case ".txt", ".md", "":
		text = string(bytes.ToValidUTF8(data, []byte("�")))
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
	if err != nil {
		return Document{}, err
	}

	text = normalizeWhitespace(text)
	if cut := utils.TruncateRunes(text, e.maxChars); len(cut) != len(text) {
		text = cut
		doc.Truncated = true
	}
	doc.Text = text
	return doc, nil
}

func (e *Extractor) pdfText(data []byte) (string, int, bool, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, false, fmt.Errorf("failed to read pdf: %w", err)
	}

	total := r.NumPage()
	pages := min(total, e.maxPages)

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, false, fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), pages, total > pages, nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTags.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRuns.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
