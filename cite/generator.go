// Package cite orchestrates the citation pipeline: fetch a page, collect
// its metadata, select the citation fields, and render the APA reference
// and RIS record.
package cite

import (
	"context"
	"net/url"

	"github.com/fwojciec/webcite"
)

// Ensure Generator implements webcite.Generator at compile time.
var _ webcite.Generator = (*Generator)(nil)

// Generator runs the pipeline for one URL per call. It holds no mutable
// state between calls, so a single Generator is safe for concurrent use.
type Generator struct {
	Fetcher   webcite.Fetcher
	Collector webcite.Collector
}

// NewGenerator creates a Generator with the given collaborators.
func NewGenerator(fetcher webcite.Fetcher, collector webcite.Collector) *Generator {
	return &Generator{Fetcher: fetcher, Collector: collector}
}

// Generate fetches the page at rawURL and builds its citation. A fetch
// failure aborts the pipeline and is returned as-is; missing metadata
// never fails, it degrades to placeholder text in the rendered outputs.
func (g *Generator) Generate(ctx context.Context, rawURL string) (*webcite.Citation, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := g.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	bag, err := g.Collector.Collect(html)
	if err != nil {
		return nil, err
	}

	title := webcite.ChooseTitle(bag)
	authors := webcite.ChooseAuthors(bag)
	year := webcite.ChooseYear(bag)
	siteName := webcite.ChooseSiteName(bag, rawURL)

	apa := webcite.BuildAPAReference(rawURL, title, authors, year, siteName)
	ris := webcite.BuildRISRecord(rawURL, title, authors, year, apa)

	return &webcite.Citation{
		SourceURL: rawURL,
		Title:     title,
		Authors:   authors,
		Year:      year,
		SiteName:  siteName,
		APA:       apa,
		RIS:       ris,
	}, nil
}

// validateURL rejects input the fetcher could not meaningfully retrieve.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return webcite.Errorf(webcite.EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return webcite.Errorf(webcite.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return webcite.Errorf(webcite.EINVALID, "URL must be http or https, got %q", rawURL)
	}
	if u.Host == "" {
		return webcite.Errorf(webcite.EINVALID, "URL missing host: %q", rawURL)
	}
	return nil
}
