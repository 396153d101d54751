package webcite

import "strings"

// RIS download conventions for the generated record.
const (
	RISMediaType = "application/x-research-info-systems"
	RISFilename  = "web_reference.ris"
)

// BuildRISRecord builds a RIS record for an electronic resource:
//
//	TY  - ELEC
//	AU  - one line per author
//	TI  - title (if present)
//	PY  - year (if present)
//	UR  - url
//	N1  - full APA-style reference
//	ER  -
//
// The ER tag carries a trailing space per RIS convention, and the record
// ends with a blank line so concatenated records stay separated.
func BuildRISRecord(url, title string, authors []string, year, apaRef string) string {
	lines := []string{"TY  - ELEC"}

	for _, a := range authors {
		lines = append(lines, "AU  - "+a+",")
	}

	if title != "" {
		lines = append(lines, "TI  - "+title)
	}
	if year != "" {
		lines = append(lines, "PY  - "+year)
	}

	lines = append(lines,
		"UR  - "+url,
		"N1  - "+apaRef,
		"ER  - ",
	)

	return strings.Join(lines, "\n") + "\n\n"
}
