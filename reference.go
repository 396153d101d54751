package webcite

import "strings"

// Placeholder text used when a field could not be resolved.
const (
	PlaceholderYear   = "n.d."
	PlaceholderTitle  = "Title not available"
	PlaceholderAuthor = "Author"
)

// BuildAPAReference builds an approximate single-line APA style web
// reference:
//
//	Author(s). (Year). Title. Site name. Retrieved from URL
//
// Absent fields degrade to placeholders: the author segment falls back to
// the site name and then to "Author", the year to "n.d.", the title to
// "Title not available". The result depends only on the arguments, so
// rebuilding with identical inputs is byte-identical.
func BuildAPAReference(url, title string, authors []string, year, siteName string) string {
	author := strings.Join(authors, ", ")
	if author == "" {
		author = siteName
	}
	if author == "" {
		author = PlaceholderAuthor
	}

	if year == "" {
		year = PlaceholderYear
	}
	if title == "" {
		title = PlaceholderTitle
	}

	ref := author + ". (" + year + "). " + title + ". " + siteName + ". Retrieved from " + url
	return strings.TrimSpace(ref)
}
