package model

import "time"

// Answer is one answered question.
type Answer struct {
	// Question is the user's question, verbatim.
	Question string

	// Response is the text shown to the user. On failure it holds the
	// generic failure message, never the underlying error.
	Response string

	// Elapsed is the wall-clock time spent producing Response.
	Elapsed time.Duration

	// Attempts is the number of generation calls made. Zero means the
	// model was not contacted.
	Attempts int

	// Source is the URL of the page the answer is based on.
	Source string
}
