// Package report renders answers for the terminal.
//
// This package contains writers for different output formats:
//   - TextWriter: the plain "Response:" line followed by the timing line
//   - MarkdownWriter: a Markdown section per answer (nao1215/markdown)
//   - JSONWriter: one JSON object per answer for piping into other tools
//
// Writers implement the Writer interface and are selected by name with
// NewWriter.
package report
