package apod

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extractor errors.
var (
	// ErrEmptyPage is returned when there is no page text to scan.
	ErrEmptyPage = errors.New("empty page: nothing to extract")

	// ErrNoImageLink is returned when no anchor on the page qualifies.
	ErrNoImageLink = errors.New("no image link found in page")
)

// Extractor scans APOD page markup for the day's image link.
//
// It streams tokens rather than building a DOM: the selection rule only
// needs anchors in document order, so a full tree would be wasted work.
type Extractor struct {
	// baseURL is prefixed onto relative hrefs. It is the page URL itself;
	// APOD's image links are relative to the page directory.
	baseURL string
}

// NewExtractor creates an Extractor resolving relative links against baseURL.
func NewExtractor(baseURL string) *Extractor {
	return &Extractor{baseURL: baseURL}
}

// ExtractImageURL returns the resolved URL of the first anchor whose href
// contains the substring "image". Anchors after the first match are ignored.
// Returns ErrNoImageLink if no anchor qualifies.
func (e *Extractor) ExtractImageURL(pageHTML string) (string, error) {
	if pageHTML == "" {
		return "", ErrEmptyPage
	}

	z := html.NewTokenizer(strings.NewReader(pageHTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return "", ErrNoImageLink
			}
			return "", fmt.Errorf("error parsing page: %w", z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			if href, ok := anchorHref(z); ok && strings.Contains(href, "image") {
				return e.resolve(href), nil
			}
		}
	}
}

// anchorHref scans the current tag's attributes for a non-empty href.
func anchorHref(z *html.Tokenizer) (string, bool) {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" && len(val) > 0 {
			return string(val), true
		}
		if !more {
			return "", false
		}
	}
}

// resolve keeps the historical resolution rule intact: an href containing
// "http" is treated as absolute and used verbatim; anything else is
// concatenated onto the base URL.
func (e *Extractor) resolve(href string) string {
	if strings.Contains(href, "http") {
		return href
	}
	return e.baseURL + href
}
