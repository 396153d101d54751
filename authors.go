package webcite

import "strings"

// corporateKeywords are organizational terms whose presence marks a name
// as a corporate author. Substring match, case-insensitive.
var corporateKeywords = []string{
	"commission",
	"department",
	"council",
	"university",
	"government",
	"ministry",
	"office",
	"organisation",
	"organization",
	"authority",
	"association",
	"society",
	"board",
	"institute",
	"foundation",
	"centre",
	"center",
}

// IsProbableCorporateAuthor reports whether a raw author string is likely
// a corporate body rather than a person. A name containing a common
// organizational term, or one with more than four words, is treated as
// corporate. This is a heuristic; false positives and negatives are
// accepted.
func IsProbableCorporateAuthor(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range corporateKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return len(strings.Fields(name)) > 4
}

// FormatPersonalName formats a personal name as "Surname, F. M.".
//
//	"Helen Christensen"    -> "Christensen, H."
//	"Helen J. Christensen" -> "Christensen, H. J."
//	"H. Christensen"       -> "Christensen, H."
//
// Single-token names (mononyms) and empty input are returned unchanged.
func FormatPersonalName(name string) string {
	name = strings.TrimSpace(name)
	parts := strings.Fields(strings.ReplaceAll(name, ",", " "))

	if len(parts) == 0 {
		return name
	}
	if len(parts) == 1 {
		// Cannot separate given name from surname.
		return name
	}

	surname := parts[len(parts)-1]
	var initials []string
	for _, p := range parts[:len(parts)-1] {
		p = strings.ReplaceAll(p, ".", "")
		if p == "" {
			continue
		}
		first := []rune(p)[0]
		initials = append(initials, strings.ToUpper(string(first))+".")
	}

	if len(initials) == 0 {
		return surname
	}
	return surname + ", " + strings.Join(initials, " ")
}

// SplitAuthorString splits a raw author meta string into individual names.
// It handles simple patterns like "A, B", "A; B", and "A and B". The
// " and " replacement happens before splitting, so order matters. If
// nothing survives splitting, the trimmed input is returned as a single
// name.
func SplitAuthorString(s string) []string {
	trimmed := strings.TrimSpace(s)

	replaced := strings.ReplaceAll(trimmed, " and ", ", ")
	var names []string
	for _, part := range strings.FieldsFunc(replaced, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}

	if len(names) == 0 {
		return []string{trimmed}
	}
	return names
}
