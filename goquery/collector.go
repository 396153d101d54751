// Package goquery provides a goquery-based implementation of
// webcite.Collector that gathers citation metadata from raw HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webcite"
)

// Ensure Collector implements webcite.Collector at compile time.
var _ webcite.Collector = (*Collector)(nil)

// Collector buckets metadata signals from meta elements and the title
// element of an HTML document.
type Collector struct{}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect parses the HTML and returns a fully populated MetaBag.
//
// Each meta element contributes to at most one bucket, decided by
// first-matching rules over its lower-cased name and property attributes.
// Elements with empty trimmed content are skipped; unmatched elements are
// ignored. The trimmed <title> text, when non-empty, lands in the
// meta_title bucket.
func (c *Collector) Collect(html string) (webcite.MetaBag, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webcite.Errorf(webcite.EINVALID, "failed to parse HTML: %v", err)
	}

	bag := webcite.NewMetaBag()

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		bag[webcite.MetaTitle] = append(bag[webcite.MetaTitle], title)
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name := strings.ToLower(sel.AttrOr("name", ""))
		prop := strings.ToLower(sel.AttrOr("property", ""))
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			return
		}

		if key := bucketFor(name, prop); key != "" {
			bag[key] = append(bag[key], content)
		}
	})

	return bag, nil
}

// bucketFor dispatches a meta element to its bucket. The rule order is
// fixed and the first match wins; "" means the element is ignored.
func bucketFor(name, prop string) string {
	switch {
	case name == "citation_title":
		return webcite.MetaCitationTitle
	case prop == "og:title":
		return webcite.MetaOGTitle
	case name == "twitter:title":
		return webcite.MetaTwitterTitle
	case name == "author":
		return webcite.MetaAuthor
	case name == "citation_author":
		return webcite.MetaCitationAuthor
	case prop == "article:author":
		return webcite.MetaArticleAuthor
	case name == "date" || name == "article:published_time":
		return webcite.MetaDate
	case name == "citation_publication_date":
		return webcite.MetaPublicationDate
	case strings.HasPrefix(name, "dc.date"):
		return webcite.MetaDCDate
	case prop == "article:published_time":
		return webcite.MetaArticlePublishedTime
	case prop == "og:site_name":
		return webcite.MetaSiteName
	default:
		return ""
	}
}
