// Package pipeline runs the steps that turn a URL into a scraped page.
//
// Each step implements Step and receives the same *model.Page, filling in
// the fields it is responsible for. A scrape is a FetchStep followed by an
// ExtractStep. Steps run in the order they were added; the first failing
// step stops the pipeline and its error is returned unchanged, so callers
// can still match the fetch and extract sentinel errors with errors.Is.
package pipeline
