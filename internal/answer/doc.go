// Package answer builds prompts from scraped page content and turns model
// output into the text shown to the user.
//
// The Answerer never returns an empty reply: missing content, empty model
// output and repeated failures each map to a fixed user-facing message.
// Failure details are logged, not shown.
package answer
