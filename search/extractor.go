package search

import (
	"net/url"
	"strings"
)

// link helpers shared by the parser and the resolver

const (
	// redirectParam carries the real destination in DuckDuckGo's outbound
	// link wrapper (//duckduckgo.com/l/?uddg=...)
	redirectParam = "uddg"

	linkedInCompanyPattern = "linkedin.com/company"
)

// resolveHref turns an anchor's raw href into the link it points at. Relative
// hrefs are resolved against base the way a DOM href property is, and
// redirector URLs are unwrapped. Anything unparseable is returned verbatim.
func resolveHref(base *url.URL, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base != nil {
		u = base.ResolveReference(u)
	}

	// Query().Get already percent-decodes the value
	if dest := u.Query().Get(redirectParam); dest != "" {
		return dest
	}
	return u.String()
}

// IsLinkedInCompany reports whether link looks like a LinkedIn company page
func IsLinkedInCompany(link string) bool {
	return strings.Contains(link, linkedInCompanyPattern)
}

// FirstLinkedInCompany returns the first LinkedIn company link in page order
func FirstLinkedInCompany(links []string) (string, bool) {
	for _, link := range links {
		if IsLinkedInCompany(link) {
			return link, true
		}
	}
	return "", false
}
