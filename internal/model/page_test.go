package model

import (
	"testing"
)

// TestPageComputeHash tests the ComputeHash method.
func TestPageComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("computes SHA256 hash of raw content", func(t *testing.T) {
		t.Parallel()

		page := &Page{
			Raw: []byte("Hello, World!"),
		}
		page.ComputeHash()

		// Expected SHA256 of "Hello, World!"
		expected := "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f"
		if page.Hash != expected {
			t.Errorf("got %q, expected %q", page.Hash, expected)
		}
	})

	t.Run("empty content produces empty hash", func(t *testing.T) {
		t.Parallel()

		page := &Page{Raw: []byte{}}
		page.ComputeHash()

		if page.Hash != "" {
			t.Errorf("expected empty hash, got %q", page.Hash)
		}
	})
}

func TestPageSetBlocks(t *testing.T) {
	t.Parallel()

	t.Run("joins blocks with a blank line", func(t *testing.T) {
		t.Parallel()

		page := NewPage("https://example.com")
		page.SetBlocks([]string{"first block of text", "second block of text"})

		want := "first block of text\n\nsecond block of text"
		if page.Content != want {
			t.Errorf("got %q, expected %q", page.Content, want)
		}
		if len(page.Blocks) != 2 {
			t.Errorf("expected 2 blocks, got %d", len(page.Blocks))
		}
	})

	t.Run("no blocks means no content", func(t *testing.T) {
		t.Parallel()

		page := NewPage("https://example.com")
		page.SetBlocks(nil)

		if page.Content != "" {
			t.Errorf("expected no content, got %q", page.Content)
		}
	})
}

func TestPageDisplayName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		page Page
		want string
	}{
		{"title wins", Page{URL: "https://a", FinalURL: "https://b", Title: "Home"}, "Home"},
		{"final URL after redirect", Page{URL: "https://a", FinalURL: "https://b"}, "https://b"},
		{"requested URL", Page{URL: "https://a"}, "https://a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.page.DisplayName(); got != tc.want {
				t.Errorf("DisplayName() = %q, expected %q", got, tc.want)
			}
		})
	}
}
