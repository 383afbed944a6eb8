// Package session holds the state of one interactive chat: the content of
// the most recently scraped page and the collaborators that scrape pages
// and answer questions about them.
package session
