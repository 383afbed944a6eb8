package report

import (
	"fmt"
	"io"
	"time"

	"github.com/nao1215/sitechat/internal/model"
)

// Format names accepted by NewWriter.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Writer defines the interface for answer output.
type Writer interface {
	// Write outputs one answer to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(answer model.Answer) (int, error)
}

// NewWriter returns the Writer for format. jsonOpts apply only to the
// JSON format.
func NewWriter(format string, output io.Writer, jsonOpts ...JSONWriterOption) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, jsonOpts...), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// baseWriter provides common functionality for answer writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// seconds formats d the way timings are shown to the user, e.g. "1.23".
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}
