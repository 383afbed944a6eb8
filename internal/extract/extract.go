package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinBlockLength is the shortest block, in runes, that is kept.
const DefaultMinBlockLength = 20

const (
	// removeSelector matches elements removed before text is collected.
	removeSelector = "script, style, nav, footer, iframe, meta, link"

	// blockSelector matches the elements whose text is collected.
	blockSelector = "h1, h2, h3, p"

	blockSeparator = "\n\n"
)

// ErrNoContent is returned when a page yields no block long enough to keep.
var ErrNoContent = errors.New("no content extracted from website")

// Result is the text extracted from one page.
type Result struct {
	// Title is the trimmed <title> text, empty when absent.
	Title string

	// Blocks are the retained block texts in document order.
	Blocks []string

	// Content is Blocks joined with a blank line.
	Content string
}

// Extractor pulls heading and paragraph text out of HTML.
type Extractor struct {
	minBlockLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinBlockLength sets the minimum block length in runes.
// Negative values are treated as zero.
func WithMinBlockLength(n int) Option {
	return func(e *Extractor) {
		e.minBlockLength = max(n, 0)
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{minBlockLength: DefaultMinBlockLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads an HTML document from r and returns its content blocks.
// contentType is the response Content-Type header and may be empty.
func (e *Extractor) Extract(r io.Reader, contentType string) (*Result, error) {
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(removeSelector).Remove()

	result := &Result{
		Title: cleanText(doc.Find("title").First().Text()),
	}

	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		text := cleanText(s.Text())
		if text == "" || utf8.RuneCountInString(text) < e.minBlockLength {
			return
		}
		result.Blocks = append(result.Blocks, text)
	})

	if len(result.Blocks) == 0 {
		return result, ErrNoContent
	}

	result.Content = strings.Join(result.Blocks, blockSeparator)
	return result, nil
}

// ExtractBytes is Extract for an in-memory body.
func (e *Extractor) ExtractBytes(body []byte, contentType string) (*Result, error) {
	return e.Extract(bytes.NewReader(body), contentType)
}

// cleanText trims surrounding whitespace and normalises to NFC.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
