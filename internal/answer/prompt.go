package answer

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMaxContentChars is how much page content goes into a prompt.
const DefaultMaxContentChars = 2000

const promptTemplate = `Based on the following website content, please answer the question.

Content:
%s

Question: %s

Please provide a concise and relevant answer based only on the website content above.`

// BuildPrompt embeds the first maxChars characters of content and the
// question, unchanged, in the prompt template. A maxChars of zero or less
// embeds no content.
func BuildPrompt(content, question string, maxChars int) string {
	return fmt.Sprintf(promptTemplate, truncate(content, maxChars), question)
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
