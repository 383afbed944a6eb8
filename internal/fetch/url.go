package fetch

import "strings"

// NormalizeURL trims surrounding whitespace and prepends https:// when the
// input has no http:// or https:// prefix.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	return "https://" + u
}
