package capture

import (
	"regexp"
	"strings"
)

// urlPattern matches http/https URLs in email bodies: scheme, then a run
// of non-whitespace non-quote non-angle-bracket characters, optionally
// followed by further ?/&-delimited query segments.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+(?:[?&][^\s<>"']+)*`)

// authKeywords flag URLs that look like magic links, verification links,
// or other auth flows. A heuristic hint, not a security control.
var authKeywords = []string{"magic", "auth", "token", "verify", "confirm"}

// Links holds the URLs extracted from an email body.
type Links struct {
	All  []string `json:"all"`
	Auth []string `json:"auth"`
}

// ExtractLinks pulls every URL out of a text body, deduplicating while
// preserving first-seen order, and classifies the auth-relevant subset.
// Pure function, no I/O.
func ExtractLinks(body string) Links {
	matches := urlPattern.FindAllString(body, -1)

	links := Links{All: []string{}, Auth: []string{}}
	seen := make(map[string]struct{}, len(matches))
	for _, link := range matches {
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		links.All = append(links.All, link)
		if isAuthLink(link) {
			links.Auth = append(links.Auth, link)
		}
	}
	return links
}

func isAuthLink(link string) bool {
	lower := strings.ToLower(link)
	for _, kw := range authKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
