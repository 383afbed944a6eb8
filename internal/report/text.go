package report

import (
	"fmt"
	"io"

	"github.com/nao1215/sitechat/internal/model"
)

// TextWriter prints answers as plain text:
//
//	Response: <text>
//	(Generated in 1.23 seconds)
//
// preceded by a blank line.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the answer.
func (w *TextWriter) Write(answer model.Answer) (int, error) {
	return fmt.Fprintf(w.output, "\nResponse: %s\n(Generated in %s seconds)\n",
		answer.Response, seconds(answer.Elapsed))
}
