package storage

import (
	"context"

	"github.com/poiesic/confsearch/core"
)

// ProgramInfo is the conference program metadata stored alongside the session
// records. Counts are computed once at load time.
type ProgramInfo struct {
	Name          string
	Dates         string
	Location      string
	Days          []DayInfo
	TotalSessions int
	TotalPapers   int
}

// DayInfo is the per-day metadata needed to reassemble the program tree.
type DayInfo struct {
	Date      string
	DayOfWeek string
}

// ProgramRepository provides read-mostly access to a loaded conference program.
// A program is put once and then only read; implementations must be
// thread-safe for concurrent readers.
type ProgramRepository interface {
	// PutProgram stores a full conference program, replacing any program
	// stored previously. The program must already be validated.
	PutProgram(ctx context.Context, conference *core.Conference) error

	// Loaded reports whether a program has been stored.
	Loaded(ctx context.Context) (bool, error)

	// ProgramInfo returns the stored program metadata.
	// Returns ErrNotLoaded if no program has been stored.
	ProgramInfo(ctx context.Context) (*ProgramInfo, error)

	// GetProgram reassembles and returns the full conference tree.
	// Returns ErrNotLoaded if no program has been stored.
	GetProgram(ctx context.Context) (*core.Conference, error)

	// ScanSessions iterates all sessions in corpus order (day-major,
	// preserving each day's session order) and calls fn for each one.
	// Iteration stops on the first error returned by fn.
	// Returns ErrNotLoaded if no program has been stored.
	ScanSessions(ctx context.Context, fn func(session *core.Session) error) error

	// GetSession retrieves a single session by its content ID
	// (core.IDFromContent of the session's internal string id).
	// Returns ErrNotFound if no such session exists.
	GetSession(ctx context.Context, id core.ID) (*core.Session, error)

	// Overview returns the corpus-level accounting of the stored program.
	// Returns ErrNotLoaded if no program has been stored.
	Overview(ctx context.Context) (core.Overview, error)

	// Close closes the repository and releases resources.
	Close() error
}
