package contacts

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for matching: diacritics are stripped, '|' becomes a
// space, whitespace runs collapse to one space and the result is lower case.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ReplaceAll(folded, "|", " ")
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}

// Filter returns the contacts whose given name, family name or first email
// contains query after normalization. An empty query returns contacts as is.
func Filter(contacts []Contact, query string) []Contact {
	if query == "" {
		return contacts
	}
	q := Normalize(query)
	var out []Contact
	for _, c := range contacts {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c Contact, q string) bool {
	return strings.Contains(Normalize(c.GivenName), q) ||
		strings.Contains(Normalize(c.FamilyName), q) ||
		(len(c.Emails) > 0 && strings.Contains(Normalize(c.Emails[0]), q))
}
