// Package main provides the entry point for the sitechat CLI.
//
// sitechat fetches a web page, extracts its visible text and answers
// questions about it with the Gemini API.
//
// Usage:
//
//	export GEMINI_API_KEY=...
//	sitechat
//
// See --help for all available options.
package main

// main is the entry point for sitechat.
func main() {
	Execute()
}
