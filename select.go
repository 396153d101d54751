package webcite

import (
	"net/url"
	"regexp"
	"strings"
)

// titlePriority is the bucket order tried when choosing a title.
var titlePriority = []string{MetaCitationTitle, MetaOGTitle, MetaTwitterTitle, MetaTitle}

// datePriority is the bucket order scanned when choosing a year.
var datePriority = []string{MetaArticlePublishedTime, MetaPublicationDate, MetaDCDate, MetaDate}

// yearPattern matches a delimited four-digit year between 1900 and 2099.
// The word boundaries matter: "20231" must not match, while the "1998" in
// "Copyright 1998-2024" must.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ChooseTitle picks the best available title from the bag, or "" when no
// candidate exists.
func ChooseTitle(bag MetaBag) string {
	for _, key := range titlePriority {
		if v := bag.First(key); v != "" {
			return v
		}
	}
	return ""
}

// ChooseYear picks a four-digit publication year from the collected date
// buckets, or "" when none of the candidates contains one. This is a
// substring search over priority-ordered candidates, not a date parse:
// the first delimited year wins.
func ChooseYear(bag MetaBag) string {
	for _, key := range datePriority {
		for _, candidate := range bag[key] {
			if match := yearPattern.FindString(candidate); match != "" {
				return match
			}
		}
	}
	return ""
}

// ChooseSiteName picks a site name from og:site_name, falling back to the
// URL's host and finally the literal "Website". Never returns "".
func ChooseSiteName(bag MetaBag, rawURL string) string {
	if v := bag.First(MetaSiteName); v != "" {
		return v
	}
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	return "Website"
}

// ChooseAuthors picks and formats the author list from the bag.
//
// citation_author usually lists each author separately, so its values are
// taken as-is; the single-string author and article:author sources are
// split first. Each raw name is then rendered: corporate authors verbatim,
// personal names as "Surname, F. M.". Returns nil when no author source
// is present.
func ChooseAuthors(bag MetaBag) []string {
	var raw []string
	switch {
	case len(bag[MetaCitationAuthor]) > 0:
		raw = bag[MetaCitationAuthor]
	case len(bag[MetaAuthor]) > 0:
		raw = SplitAuthorString(bag[MetaAuthor][0])
	case len(bag[MetaArticleAuthor]) > 0:
		raw = SplitAuthorString(bag[MetaArticleAuthor][0])
	default:
		return nil
	}

	formatted := make([]string, 0, len(raw))
	for _, name := range raw {
		if IsProbableCorporateAuthor(name) {
			formatted = append(formatted, strings.TrimSpace(name))
		} else {
			formatted = append(formatted, FormatPersonalName(name))
		}
	}
	return formatted
}
