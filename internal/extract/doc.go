// Package extract turns an HTML page into the plain text a question is
// answered from.
//
// The body is decoded to UTF-8 using the charset declared in the
// Content-Type header or sniffed from the document, then parsed with
// goquery. Elements that never carry page content (scripts, styles,
// navigation, footers, iframes, meta and link tags) are removed before
// the text of every h1, h2, h3 and p element is collected in document
// order. Each block is trimmed and NFC-normalised, and blocks shorter than
// the minimum length are dropped as navigation crumbs and labels.
//
// The retained blocks are joined with a blank line between them. A page
// with no retained blocks is reported as ErrNoContent so callers can tell
// an empty page from a failed fetch.
package extract
