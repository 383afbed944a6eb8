// Package model defines the data structures shared by the sitechat
// packages:
//   - Page: one scraped web page as it moves through the scrape pipeline
//   - Answer: one answered question, ready to be rendered
//
// The models live in their own package so that pipeline, session and
// report can share them without import cycles.
package model
