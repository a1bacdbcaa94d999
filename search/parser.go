package search

import (
	"fmt"
	"io"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for DuckDuckGo's static-markup results page. These are an
// external contract: if the markup changes, these change with it.
const (
	ResultsSelector   = ".results"
	resultSelector    = ".results .result"
	adBadgeSelector   = "button.badge--ad"
	urlAnchorSelector = "a.result__url"
)

// ParseResults reads a rendered results page and returns the destination of
// every non-sponsored result in page order. baseURL is the address the page
// was served from and is used to resolve relative hrefs.
func ParseResults(r io.Reader, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse results page: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	return ExtractLinks(doc, base), nil
}

// ExtractLinks walks the result entries of doc.
//   - entries carrying an ad badge are dropped entirely
//   - entries without a URL anchor (or whose anchor has no href) are dropped
//   - order is kept and nothing is deduplicated
func ExtractLinks(doc *goquery.Document, base *url.URL) []string {
	links := []string{}

	doc.Find(resultSelector).Each(func(i int, s *goquery.Selection) {
		if s.Find(adBadgeSelector).Length() > 0 {
			return
		}

		href, exists := s.Find(urlAnchorSelector).First().Attr("href")
		if !exists {
			return
		}

		links = append(links, resolveHref(base, href))
	})

	return links
}
