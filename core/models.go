package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique 64-bit identifier for stored corpus records.
// It is derived from the program's string identifiers via content hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Affiliation is an institutional affiliation of an author.
type Affiliation struct {
	Institution string `json:"institution"`
	Country     string `json:"country"`
}

// Author is an author entry on a single paper. The same person appearing on
// multiple papers is represented as independent Author records; there is no
// cross-paper identity resolution.
type Author struct {
	FullName     string        `json:"full_name"`
	Affiliations []Affiliation `json:"affiliations"`
}

// Paper is a conference paper belonging to exactly one session.
type Paper struct {
	PaperIDInternal string   `json:"paper_id_internal"`
	Title           string   `json:"title"`
	Authors         []Author `json:"authors"`
}

// Schedule is the calendar slot of a session.
type Schedule struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Session is a scheduled conference time-block containing zero or more papers.
// SessionIDInternal is unique across the whole corpus, not just within its day.
type Session struct {
	SessionIDInternal string   `json:"session_id_internal"`
	Title             string   `json:"title"`
	SessionType       string   `json:"session_type"`
	Schedule          Schedule `json:"schedule"`
	Location          string   `json:"location"`
	Track             string   `json:"track"`
	Papers            []Paper  `json:"papers"`
}

// Day is one calendar day of the conference program.
type Day struct {
	Date      string    `json:"date"`
	DayOfWeek string    `json:"day_of_week"`
	Sessions  []Session `json:"sessions"`
}

// Conference is the full loaded conference program. It is populated once at
// load time and treated as immutable for the remainder of the process.
type Conference struct {
	ConferenceName  string `json:"conference_name"`
	ConferenceDates string `json:"conference_dates"`
	Location        string `json:"location"`
	Days            []Day  `json:"days"`
}

// AuthorProfile is the reduced author representation surfaced in results:
// the full name plus a single institution (the first listed affiliation).
type AuthorProfile struct {
	FullName    string `json:"full_name"`
	Institution string `json:"institution"`
}

// PaperResult is the projection of a paper inside a matched session.
type PaperResult struct {
	PaperTitle string          `json:"paper_title"`
	PaperID    string          `json:"paper_id"`
	Authors    []AuthorProfile `json:"authors"`
}

// SearchResult is the projection of a matched session and its papers.
type SearchResult struct {
	SessionTitle string        `json:"session_title"`
	SessionID    string        `json:"session_id"`
	SessionType  string        `json:"session_type"`
	Schedule     Schedule      `json:"schedule"`
	Location     string        `json:"location"`
	Track        string        `json:"track"`
	Papers       []PaperResult `json:"papers"`
}

// QueryResponse is the full answer to a query: the query itself, a short
// factual summary, a longer contextual summary, and the matched results in
// corpus order.
type QueryResponse struct {
	Query             string         `json:"query"`
	Summary           string         `json:"summary"`
	ContextualSummary string         `json:"contextual_summary"`
	Results           []SearchResult `json:"results"`
}

// Overview is the corpus-level accounting of the loaded program.
type Overview struct {
	Name          string `json:"name"`
	Dates         string `json:"dates"`
	Location      string `json:"location"`
	TotalDays     int    `json:"totalDays"`
	TotalSessions int    `json:"totalSessions"`
	TotalPapers   int    `json:"totalPapers"`
}

// SessionCount returns the total number of sessions across all days.
func (c *Conference) SessionCount() int {
	count := 0
	for _, day := range c.Days {
		count += len(day.Sessions)
	}
	return count
}

// PaperCount returns the total number of papers across all days.
func (c *Conference) PaperCount() int {
	count := 0
	for _, day := range c.Days {
		for _, session := range day.Sessions {
			count += len(session.Papers)
		}
	}
	return count
}

// ComputeOverview derives the Overview for the program.
func (c *Conference) ComputeOverview() Overview {
	return Overview{
		Name:          c.ConferenceName,
		Dates:         c.ConferenceDates,
		Location:      c.Location,
		TotalDays:     len(c.Days),
		TotalSessions: c.SessionCount(),
		TotalPapers:   c.PaperCount(),
	}
}
