package query

import (
	"strings"

	"github.com/poiesic/confsearch/core"
)

// MatchRule identifies which relevance rule accepted a session.
type MatchRule int

const (
	// RuleNone means the session did not match.
	RuleNone MatchRule = iota
	// RulePhrase means the full normalized query appeared verbatim in the blob.
	RulePhrase
	// RuleCategory means a session-type hint word (poster/oral/keynote) matched.
	RuleCategory
	// RuleDay means a weekday mentioned in the query matched the schedule date.
	RuleDay
	// RuleKeywords means enough extracted keywords appeared in the blob.
	RuleKeywords
)

// String returns the rule name for logs and monitors.
func (r MatchRule) String() string {
	switch r {
	case RulePhrase:
		return "phrase"
	case RuleCategory:
		return "category"
	case RuleDay:
		return "day"
	case RuleKeywords:
		return "keywords"
	default:
		return "none"
	}
}

// Session-type hint words recognized in queries, checked in this order.
var categoryHints = []string{"poster", "oral", "keynote"}

// Weekday names recognized by the day rule. Weekend days are not part of the
// program format.
var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// SessionBlob builds the searchable text for a session: the lower-cased,
// space-joined concatenation of its title, type, track, location, paper
// titles, author names, and affiliation institutions.
func SessionBlob(session *core.Session) string {
	parts := []string{
		session.Title,
		session.SessionType,
		session.Track,
		session.Location,
	}
	for _, paper := range session.Papers {
		parts = append(parts, paper.Title)
	}
	for _, paper := range session.Papers {
		for _, author := range paper.Authors {
			parts = append(parts, author.FullName)
		}
	}
	for _, paper := range session.Papers {
		for _, author := range paper.Authors {
			for _, affiliation := range author.Affiliations {
				parts = append(parts, affiliation.Institution)
			}
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchSession decides whether a session satisfies the query and reports the
// rule that accepted it. Rules are evaluated in precedence order; the first
// hit wins. All matches are equally relevant, there is no ranking beyond
// match/no-match. The function is pure.
func MatchSession(session *core.Session, keywords []string, normalizedQuery string) MatchRule {
	blob := SessionBlob(session)

	// 1. Exact phrase containment
	if normalizedQuery != "" && strings.Contains(blob, normalizedQuery) {
		return RulePhrase
	}

	// 2. Session-type hint
	sessionType := strings.ToLower(session.SessionType)
	for _, hint := range categoryHints {
		if strings.Contains(normalizedQuery, hint) && strings.Contains(sessionType, hint) {
			return RuleCategory
		}
	}

	// 3. Weekday hint: the first weekday occurring in the query is the one
	// checked against the schedule date.
	if day := firstWeekday(normalizedQuery); day != "" {
		if strings.Contains(strings.ToLower(session.Schedule.Date), day) {
			return RuleDay
		}
	}

	// 4. Keyword overlap: at least min(2, len(keywords)) keywords must appear
	// in the blob. With zero extracted keywords the threshold is zero and the
	// session matches unconditionally; residual behavior for all-stop-word
	// queries, kept as is.
	matching := 0
	for _, keyword := range keywords {
		if strings.Contains(blob, keyword) {
			matching++
		}
	}
	threshold := 2
	if len(keywords) < threshold {
		threshold = len(keywords)
	}
	if matching >= threshold {
		return RuleKeywords
	}

	return RuleNone
}

// Matches reports whether the session satisfies the query.
func Matches(session *core.Session, keywords []string, normalizedQuery string) bool {
	return MatchSession(session, keywords, normalizedQuery) != RuleNone
}

// firstWeekday returns the weekday name whose first occurrence in the query
// comes earliest, or "" if none is mentioned.
func firstWeekday(normalizedQuery string) string {
	first := ""
	firstIndex := -1
	for _, day := range weekdays {
		index := strings.Index(normalizedQuery, day)
		if index < 0 {
			continue
		}
		if firstIndex < 0 || index < firstIndex {
			first = day
			firstIndex = index
		}
	}
	return first
}
