package query

import (
	"fmt"
	"strings"

	"github.com/poiesic/confsearch/core"
)

// Summarize derives the short factual summary and the longer contextual
// summary for a result set. Both are deterministic functions of the results
// and the query.
func Summarize(results []core.SearchResult, query string) (summary, contextual string) {
	return shortSummary(results, query), contextualSummary(results, query)
}

func shortSummary(results []core.SearchResult, query string) string {
	if len(results) == 0 {
		return fmt.Sprintf("No sessions or papers found matching \"%s\".", query)
	}

	sessionCount := len(results)
	paperCount := 0
	for _, result := range results {
		paperCount += len(result.Papers)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d session%s", sessionCount, plural(sessionCount))
	if paperCount > 0 {
		fmt.Fprintf(&b, " and %d paper%s", paperCount, plural(paperCount))
	}
	fmt.Fprintf(&b, " related to \"%s\".", query)

	if strings.Contains(strings.ToLower(query), "poster") {
		posterCount := countPosterResults(results)
		if posterCount > 0 {
			fmt.Fprintf(&b, " Includes %d poster session%s.", posterCount, plural(posterCount))
		}
	}

	return b.String()
}

// summaryContext carries the precomputed inputs shared by the contextual
// summary rules.
type summaryContext struct {
	results    []core.SearchResult
	query      string
	normalized string
}

// contextRule pairs a predicate with a sentence template. Rules are evaluated
// in order; the first applicable rule renders the contextual summary, which
// keeps the precedence explicit and each branch independently testable.
type contextRule struct {
	name    string
	applies func(*summaryContext) bool
	render  func(*summaryContext) string
}

var contextRules = []contextRule{
	{
		name:    "author",
		applies: mentionsResultAuthor,
		render:  renderAuthorContext,
	},
	{
		name: "topic",
		applies: func(sc *summaryContext) bool {
			return strings.Contains(sc.normalized, "machine learning") ||
				strings.Contains(sc.normalized, "ai") ||
				strings.Contains(sc.normalized, "deep learning")
		},
		render: renderTopicContext,
	},
	{
		name: "session-type",
		applies: func(sc *summaryContext) bool {
			return strings.Contains(sc.normalized, "poster")
		},
		render: renderPosterContext,
	},
	{
		name:    "generic",
		applies: func(sc *summaryContext) bool { return true },
		render:  renderGenericContext,
	},
}

func contextualSummary(results []core.SearchResult, query string) string {
	if len(results) == 0 {
		return "No additional context available as no matching results were found."
	}

	sc := &summaryContext{
		results:    results,
		query:      query,
		normalized: strings.ToLower(query),
	}
	for _, rule := range contextRules {
		if rule.applies(sc) {
			return rule.render(sc)
		}
	}
	return "" // unreachable, the generic rule always applies
}

// mentionsResultAuthor reports whether any result author's first name token
// appears in the query.
func mentionsResultAuthor(sc *summaryContext) bool {
	for _, result := range sc.results {
		for _, paper := range result.Papers {
			for _, author := range paper.Authors {
				first, _, _ := strings.Cut(strings.ToLower(author.FullName), " ")
				if first != "" && strings.Contains(sc.normalized, first) {
					return true
				}
			}
		}
	}
	return false
}

func renderAuthorContext(sc *summaryContext) string {
	var institutions, topics []string
	for _, result := range sc.results {
		for _, paper := range result.Papers {
			topics = append(topics, paper.PaperTitle)
			for _, author := range paper.Authors {
				institutions = append(institutions, author.Institution)
			}
		}
	}
	institutions = distinct(institutions)
	topics = distinct(topics)

	examples := topics
	suffix := ""
	if len(topics) > 3 {
		examples = topics[:3]
		suffix = ", and others"
	}

	return fmt.Sprintf(
		"The search reveals contributions from researchers across %d institution%s, "+
			"with work spanning %d paper%s in areas such as %s%s. "+
			"This demonstrates active research collaboration and diverse expertise in the queried domain.",
		len(institutions), plural(len(institutions)),
		len(topics), plural(len(topics)),
		strings.Join(examples, ", "), suffix)
}

func renderTopicContext(sc *summaryContext) string {
	tracks := distinct(resultTracks(sc.results))
	sessionCount := len(sc.results)

	demonstrate := "demonstrate"
	if sessionCount == 1 {
		demonstrate = "demonstrates"
	}

	return fmt.Sprintf(
		"The machine learning and AI research at this conference spans %d track%s (%s), "+
			"indicating the interdisciplinary nature of AI applications in remote sensing and geoscience. "+
			"The %d session%s %s the growing integration of advanced computational methods "+
			"across various Earth observation domains.",
		len(tracks), plural(len(tracks)), strings.Join(tracks, ", "),
		sessionCount, plural(sessionCount), demonstrate)
}

func renderPosterContext(sc *summaryContext) string {
	posterCount := countPosterResults(sc.results)

	return fmt.Sprintf(
		"Poster sessions provide an interactive forum for detailed technical discussions. "+
			"The %d poster session%s found cover diverse research areas, "+
			"offering opportunities for in-depth conversations between researchers and attendees "+
			"about cutting-edge developments in their respective fields.",
		posterCount, plural(posterCount))
}

func renderGenericContext(sc *summaryContext) string {
	tracks := distinct(resultTracks(sc.results))
	sessionTypes := make([]string, 0, len(sc.results))
	for _, result := range sc.results {
		sessionTypes = append(sessionTypes, result.SessionType)
	}
	sessionTypes = distinct(sessionTypes)

	return fmt.Sprintf(
		"The search results span %d conference track%s and include %d different session type%s (%s). "+
			"This diversity reflects the multidisciplinary nature of the research area and provides "+
			"multiple venues for knowledge sharing, from formal presentations to interactive discussions.",
		len(tracks), plural(len(tracks)),
		len(sessionTypes), plural(len(sessionTypes)),
		strings.Join(sessionTypes, ", "))
}

func countPosterResults(results []core.SearchResult) int {
	count := 0
	for _, result := range results {
		if strings.Contains(strings.ToLower(result.SessionType), "poster") {
			count++
		}
	}
	return count
}

func resultTracks(results []core.SearchResult) []string {
	tracks := make([]string, 0, len(results))
	for _, result := range results {
		tracks = append(tracks, result.Track)
	}
	return tracks
}

// distinct returns the unique values in first-appearance order.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		unique = append(unique, value)
	}
	return unique
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
