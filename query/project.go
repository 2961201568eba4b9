package query

import "github.com/poiesic/confsearch/core"

// ProjectSession maps a matched session into the public result shape.
// Every paper of a matched session is included; matching is session-granular,
// papers are never filtered individually.
func ProjectSession(session *core.Session) core.SearchResult {
	papers := make([]core.PaperResult, 0, len(session.Papers))
	for i := range session.Papers {
		papers = append(papers, projectPaper(&session.Papers[i]))
	}

	return core.SearchResult{
		SessionTitle: session.Title,
		SessionID:    session.SessionIDInternal,
		SessionType:  session.SessionType,
		Schedule:     session.Schedule,
		Location:     session.Location,
		Track:        session.Track,
		Papers:       papers,
	}
}

func projectPaper(paper *core.Paper) core.PaperResult {
	authors := make([]core.AuthorProfile, 0, len(paper.Authors))
	for i := range paper.Authors {
		authors = append(authors, projectAuthor(&paper.Authors[i]))
	}

	return core.PaperResult{
		PaperTitle: paper.Title,
		PaperID:    paper.PaperIDInternal,
		Authors:    authors,
	}
}

// projectAuthor reduces an author to name plus the first listed affiliation's
// institution, or the empty string for authors with no affiliations.
func projectAuthor(author *core.Author) core.AuthorProfile {
	institution := ""
	if len(author.Affiliations) > 0 {
		institution = author.Affiliations[0].Institution
	}
	return core.AuthorProfile{
		FullName:    author.FullName,
		Institution: institution,
	}
}
