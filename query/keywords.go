package query

import "strings"

// Stop words dropped during keyword extraction
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "what": true, "who": true, "when": true,
	"where": true, "how": true, "about": true, "find": true, "show": true,
	"get": true,
}

// Normalize lower-cases and trims a raw query. All matching operates on the
// normalized form.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ExtractKeywords tokenizes a raw query into significant search terms.
// The query is normalized, split on whitespace, filtered of stop words and
// tokens shorter than three characters, and each surviving token is stripped
// of non-word characters. Stripping happens after filtering, so a token made
// entirely of punctuation survives as an empty string.
func ExtractKeywords(query string) []string {
	words := strings.Fields(Normalize(query))
	keywords := make([]string, 0, len(words))

	for _, word := range words {
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		keywords = append(keywords, stripNonWord(word))
	}

	return keywords
}

// stripNonWord removes every character outside [a-z0-9_] (word characters
// after normalization).
func stripNonWord(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return -1
	}, s)
}
