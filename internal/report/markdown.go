package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/sitechat/internal/model"
)

// MarkdownWriter outputs each answer as a Markdown section headed by the
// question.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the answer in Markdown format.
func (w *MarkdownWriter) Write(answer model.Answer) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.PlainText("")
	md.H3(answer.Question)
	md.PlainText("")
	md.PlainText(answer.Response)
	md.PlainText("")
	w.writeFooter(md, answer)

	return len(md.String()), md.Build()
}

// writeFooter writes the timing line and, when known, the source page.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, answer model.Answer) {
	if answer.Source != "" {
		md.PlainTextf("*Generated in %s seconds from <%s>*", seconds(answer.Elapsed), answer.Source)
		return
	}
	md.PlainTextf("*Generated in %s seconds*", seconds(answer.Elapsed))
}
