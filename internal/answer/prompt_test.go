package answer

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("exact template", func(t *testing.T) {
		t.Parallel()

		got := BuildPrompt("The shop sells green tea.", "What is sold?", DefaultMaxContentChars)
		want := "Based on the following website content, please answer the question.\n" +
			"\n" +
			"Content:\n" +
			"The shop sells green tea.\n" +
			"\n" +
			"Question: What is sold?\n" +
			"\n" +
			"Please provide a concise and relevant answer based only on the website content above."
		if got != want {
			t.Errorf("BuildPrompt() =\n%q\nwant\n%q", got, want)
		}
	})

	t.Run("content truncated to the first 2000 characters", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", 2000) + strings.Repeat("#", 500)
		got := BuildPrompt(content, "q", DefaultMaxContentChars)

		if !strings.Contains(got, strings.Repeat("a", 2000)) {
			t.Error("prompt should contain the first 2000 characters")
		}
		if strings.Contains(got, "#") {
			t.Error("prompt should not contain characters past 2000")
		}
	})

	t.Run("question embedded verbatim", func(t *testing.T) {
		t.Parallel()

		question := "  What's the PRICE of Tea?  "
		got := BuildPrompt("content", question, DefaultMaxContentChars)
		if !strings.Contains(got, "Question: "+question+"\n") {
			t.Errorf("prompt %q does not embed the question verbatim", got)
		}
	})

	t.Run("multibyte content truncated by character", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("日", 2001)
		got := BuildPrompt(content, "q", DefaultMaxContentChars)
		if n := strings.Count(got, "日"); n != 2000 {
			t.Errorf("prompt has %d characters of content, want 2000", n)
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "hé"},
		{"hello", 0, ""},
		{"hello", -1, ""},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.s, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}
