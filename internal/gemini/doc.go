// Package gemini is a minimal client for the Gemini generateContent REST
// endpoint.
//
// Only single-turn text generation is supported: one user prompt in, the
// concatenated text of the first candidate out. The API key is sent in the
// x-goog-api-key header rather than the query string so it never appears
// in request URLs or in errors that quote them.
package gemini
