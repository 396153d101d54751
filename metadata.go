package webcite

// Metadata bucket keys. The set is closed: a MetaBag always carries every
// key, possibly with an empty slice, so selectors can index without
// existence checks.
const (
	MetaCitationTitle        = "citation_title"
	MetaOGTitle              = "og_title"
	MetaTwitterTitle         = "twitter_title"
	MetaTitle                = "meta_title"
	MetaAuthor               = "author"
	MetaCitationAuthor       = "citation_author"
	MetaArticleAuthor        = "article_author"
	MetaDate                 = "date"
	MetaPublicationDate      = "publication_date"
	MetaDCDate               = "dc_date"
	MetaArticlePublishedTime = "article_published_time"
	MetaSiteName             = "site_name"
)

// MetaBagKeys lists every bucket key in a MetaBag.
var MetaBagKeys = []string{
	MetaCitationTitle,
	MetaOGTitle,
	MetaTwitterTitle,
	MetaTitle,
	MetaAuthor,
	MetaCitationAuthor,
	MetaArticleAuthor,
	MetaDate,
	MetaPublicationDate,
	MetaDCDate,
	MetaArticlePublishedTime,
	MetaSiteName,
}

// MetaBag holds raw metadata values collected from a single document,
// bucketed by source and kept in document order. It is built once per
// fetched page and read-only thereafter.
type MetaBag map[string][]string

// NewMetaBag returns a MetaBag with every bucket present and empty.
func NewMetaBag() MetaBag {
	bag := make(MetaBag, len(MetaBagKeys))
	for _, key := range MetaBagKeys {
		bag[key] = nil
	}
	return bag
}

// First returns the first value in the named bucket, or "" if the bucket
// is empty.
func (b MetaBag) First(key string) string {
	if vals := b[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Collector builds a MetaBag from raw HTML.
type Collector interface {
	// Collect parses the HTML and buckets every recognized metadata
	// signal. Unrecognized elements are ignored; Collect only fails when
	// the input cannot be parsed at all.
	Collect(html string) (MetaBag, error)
}
