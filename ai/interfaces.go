package ai

import (
	"context"

	"github.com/poiesic/confsearch/core"
)

// Resolver answers a free-text query against a loaded conference program.
// It is the delegation point for external language-model services: when a
// resolver is configured, relevance decisions, result assembly, and summary
// text are all its responsibility.
// Implementations must be thread-safe for concurrent use.
type Resolver interface {
	// Resolve processes one query against the program and returns the
	// assembled response. Implementations backed by external services are
	// expected to degrade gracefully: a malformed or failed upstream
	// exchange yields a well-formed response with an explanatory summary
	// and empty results rather than an error.
	Resolve(ctx context.Context, query string, program *core.Conference) (*core.QueryResponse, error)
}
