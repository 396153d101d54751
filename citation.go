package webcite

import (
	"context"
	"time"
)

// Citation is the resolved output of the metadata pipeline for one page.
// Title, Authors, and Year may be absent (empty); rendering substitutes
// defined placeholder text rather than failing. SiteName is never empty.
type Citation struct {
	ID        string   `json:"id"`
	SourceURL string   `json:"sourceUrl"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Year      string   `json:"year"`
	SiteName  string   `json:"siteName"`
	APA       string   `json:"apa"`
	RIS       string   `json:"ris"`

	// ContentHash and CreatedAt are set by the citation store.
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the citation contains invalid fields.
func (c *Citation) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "citation source URL required")
	}
	if c.SiteName == "" {
		return Errorf(EINVALID, "citation site name required")
	}
	if c.RIS == "" {
		return Errorf(EINVALID, "citation RIS record required")
	}
	return nil
}

// CitationService represents a service for managing stored citations.
type CitationService interface {
	// CreateCitation persists a new citation.
	CreateCitation(ctx context.Context, citation *Citation) error

	// FindCitationByID retrieves a citation by ID.
	// Returns ENOTFOUND if the citation does not exist.
	FindCitationByID(ctx context.Context, id string) (*Citation, error)

	// FindCitations retrieves citations matching the filter,
	// newest first.
	FindCitations(ctx context.Context, filter CitationFilter) ([]*Citation, error)

	// DeleteCitation permanently removes a citation.
	// Returns ENOTFOUND if the citation does not exist.
	DeleteCitation(ctx context.Context, id string) error
}

// CitationFilter represents a filter for FindCitations.
type CitationFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Generator runs the full pipeline for a single URL.
type Generator interface {
	Generate(ctx context.Context, url string) (*Citation, error)
}
