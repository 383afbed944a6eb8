package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Page represents a scraped web page.
// The fetch step fills the response fields, the extract step fills the
// content fields.
type Page struct {
	// URL is the normalised URL that was requested.
	URL string

	// FinalURL is the URL after redirects.
	FinalURL string

	// StatusCode is the HTTP response status code.
	StatusCode int

	// ContentType is the Content-Type header of the response.
	ContentType string

	// Raw contains the raw response body bytes.
	Raw []byte

	// Hash is the SHA-256 hash of the raw content.
	Hash string

	// FetchedAt is when the response was received.
	FetchedAt time.Time

	// Title is the text of the <title> element, if any.
	Title string

	// Blocks are the retained heading and paragraph texts in document order.
	Blocks []string

	// Content is the content blob: Blocks joined with BlockSeparator.
	Content string
}

// BlockSeparator joins extracted blocks into the content blob.
const BlockSeparator = "\n\n"

// NewPage creates a Page for the given URL.
func NewPage(url string) *Page {
	return &Page{URL: url}
}

// ComputeHash calculates and sets the SHA-256 hash of the page's raw content.
// This should be called after setting the Raw field.
func (p *Page) ComputeHash() {
	if len(p.Raw) == 0 {
		p.Hash = ""
		return
	}

	hash := sha256.Sum256(p.Raw)
	p.Hash = hex.EncodeToString(hash[:])
}

// SetBlocks stores the extracted blocks and rebuilds Content.
func (p *Page) SetBlocks(blocks []string) {
	p.Blocks = blocks
	p.Content = strings.Join(blocks, BlockSeparator)
}

// DisplayName returns the title if there is one, otherwise the URL.
func (p *Page) DisplayName() string {
	if p.Title != "" {
		return p.Title
	}
	if p.FinalURL != "" {
		return p.FinalURL
	}
	return p.URL
}
